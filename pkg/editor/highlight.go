package editor

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightLines applies terminal syntax highlighting to replacement lines
// for preview display. On any failure the plain text is returned unchanged.
func highlightLines(filename string, lines []string) []string {
	lexer := lexerForFile(filename)
	if lexer == nil {
		return lines
	}

	source := strings.Join(lines, "\n")
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return lines
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return lines
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return lines
	}

	highlighted := strings.Split(sb.String(), "\n")
	if len(highlighted) != len(lines) {
		return lines
	}
	return highlighted
}

func lexerForFile(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return lexer
}
