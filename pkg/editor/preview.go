package editor

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Chilluba/gemini-cli/pkg/types"
)

// RenderSuggestions formats the accepted suggestions for display: one block
// per suggestion with its target range, confidence, reasoning, and the
// highlighted replacement lines. Pure computation, no printing.
func RenderSuggestions(filename string, suggestions []types.EditSuggestion) string {
	var sb strings.Builder
	for i, s := range suggestions {
		fmt.Fprintf(&sb, "Suggestion %d: lines %d-%d (confidence %d%%)\n", i+1, s.StartLine, s.EndLine, s.Confidence)
		if s.Reasoning != "" {
			fmt.Fprintf(&sb, "  %s\n", s.Reasoning)
		}
		for _, line := range s.OriginalLines {
			fmt.Fprintf(&sb, "  - %s\n", line)
		}
		for _, line := range highlightLines(filename, s.SuggestedLines) {
			fmt.Fprintf(&sb, "  + %s\n", line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderDiff returns a colored inline diff between the original and updated
// full-file content.
func RenderDiff(originalContent, updatedContent string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(originalContent, updatedContent, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
