package types

// EditSuggestion is one proposed textual change to a file. Line numbers are
// 1-based and inclusive, addressed against the original, unmodified file.
type EditSuggestion struct {
	OriginalLines  []string `json:"originalLines"`
	SuggestedLines []string `json:"suggestedLines"`
	StartLine      int      `json:"startLine"`
	EndLine        int      `json:"endLine"`
	Reasoning      string   `json:"reasoning"`
	Confidence     int      `json:"confidence"` // 0-100
}

// LineCount returns the number of original lines the suggestion replaces.
func (s *EditSuggestion) LineCount() int {
	return s.EndLine - s.StartLine + 1
}

// FileEditAnalysis is the result of analyzing one file for an edit request.
type FileEditAnalysis struct {
	Language     string           `json:"language"`
	Complexity   int              `json:"complexity"` // 1-10
	Suggestions  []EditSuggestion `json:"suggestions"`
	Risks        []string         `json:"risks"`
	Dependencies []string         `json:"dependencies"`
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue types.
const (
	IssueSecurity        = "security"
	IssuePerformance     = "performance"
	IssueMaintainability = "maintainability"
	IssueStyle           = "style"
	IssueBug             = "bug"
)

// Suggestion types for quality analysis.
const (
	SuggestionOptimization  = "optimization"
	SuggestionRefactor      = "refactor"
	SuggestionDocumentation = "documentation"
	SuggestionTest          = "test"
)

// CodeIssue is a single problem found during quality analysis.
type CodeIssue struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"` // error, warning, info
	Message  string `json:"message"`
	Type     string `json:"type"` // security, performance, maintainability, style, bug
}

// CodeSuggestion is a non-blocking improvement idea from quality analysis.
type CodeSuggestion struct {
	Line          int    `json:"line"`
	Type          string `json:"type"` // optimization, refactor, documentation, test
	Description   string `json:"description"`
	SuggestedCode string `json:"suggestedCode,omitempty"`
}

// CodeMetrics summarizes the overall health of one file.
type CodeMetrics struct {
	Complexity           int    `json:"complexity"`           // 1-10
	MaintainabilityIndex int    `json:"maintainabilityIndex"` // 0-100
	Performance          string `json:"performance"`          // excellent, good, fair, poor
	Security             string `json:"security"`             // secure, moderate, vulnerable
}

// AnalysisResult is the result of analyzing one file for code-quality review.
type AnalysisResult struct {
	File        string           `json:"file"`
	Issues      []CodeIssue      `json:"issues"`
	Suggestions []CodeSuggestion `json:"suggestions"`
	Metrics     CodeMetrics      `json:"metrics"`
}
