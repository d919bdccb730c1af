package language

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is returned for extensions with no known language mapping.
const Fallback = "text"

// languageByExt maps a lower-cased file extension (with leading dot) to the
// language tag used to annotate oracle requests.
var languageByExt = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".rb":    "ruby",
	".rs":    "rust",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "shell",
	".bash":  "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".md":    "markdown",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".xml":   "xml",
}

// codeExtensions is the set of extensions file discovery considers code files.
var codeExtensions = map[string]bool{
	".go": true, ".py": true, ".js": true, ".jsx": true, ".ts": true,
	".tsx": true, ".java": true, ".c": true, ".h": true, ".cpp": true,
	".cc": true, ".hpp": true, ".cs": true, ".rb": true, ".rs": true,
	".php": true, ".swift": true, ".kt": true, ".scala": true, ".sh": true,
	".bash": true, ".sql": true, ".html": true, ".css": true, ".md": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".xml": true,
}

// FromExtension maps a file extension (lower-cased, with the leading dot) to
// a language tag, falling back to "text" when unmapped.
func FromExtension(ext string) string {
	if lang, ok := languageByExt[strings.ToLower(ext)]; ok {
		return lang
	}
	return Fallback
}

// FromFilename maps a file path to a language tag based on its extension.
func FromFilename(path string) string {
	return FromExtension(filepath.Ext(path))
}

// IsCodeFile reports whether the path has a recognized code-file extension.
func IsCodeFile(path string) bool {
	return codeExtensions[strings.ToLower(filepath.Ext(path))]
}

// DisplayName returns a human-readable name for a language tag, e.g.
// "javascript" -> "Javascript".
func DisplayName(tag string) string {
	return cases.Title(language.English).String(tag)
}
