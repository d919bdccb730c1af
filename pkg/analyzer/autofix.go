package analyzer

import (
	"fmt"

	"github.com/Chilluba/gemini-cli/pkg/changetracker"
	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/types"
	"github.com/Chilluba/gemini-cli/pkg/utils"
)

// FixableIssue pairs an issue with the file it was found in.
type FixableIssue struct {
	File  string
	Issue types.CodeIssue
}

// CollectFixableIssues returns the style and maintainability issues across
// all results, in result order.
func CollectFixableIssues(results []*types.AnalysisResult) []FixableIssue {
	var fixable []FixableIssue
	for _, r := range results {
		for _, issue := range r.Issues {
			if issue.Type == types.IssueStyle || issue.Type == types.IssueMaintainability {
				fixable = append(fixable, FixableIssue{File: r.File, Issue: issue})
			}
		}
	}
	return fixable
}

// RunAutoFix presents the fixable issues and, after a single confirmation,
// marks them acknowledged. It returns the number of issues acknowledged.
// This sub-mode only annotates outcomes; it does not edit files. Automated
// application belongs to the editor's apply path and is not wired up here
// yet.
func RunAutoFix(results []*types.AnalysisResult, logger *utils.Logger) int {
	fixable := CollectFixableIssues(results)
	if len(fixable) == 0 {
		logger.LogUserInteraction("No auto-fixable issues found.")
		return 0
	}

	logger.LogUserInteraction(fmt.Sprintf("Found %d auto-fixable issue(s):", len(fixable)))
	for _, f := range fixable {
		logger.LogUserInteraction(fmt.Sprintf("  %s:%d [%s] %s", f.File, f.Issue.Line, f.Issue.Type, f.Issue.Message))
	}

	if !logger.AskForConfirmation("Mark these issues as addressed?", false, false) {
		logger.LogUserInteraction("Auto-fix declined.")
		return 0
	}

	logger.LogUserInteraction(fmt.Sprintf("Acknowledged %d issue(s).", len(fixable)))
	return len(fixable)
}

func recordAnalysisSession(cfg *config.Config, root string, summary *Summary) error {
	return changetracker.RecordSession(changetracker.SessionRecord{
		SessionID:   cfg.SessionID,
		Kind:        "analysis",
		Target:      root,
		Model:       cfg.Model,
		Suggestions: summary.TotalSuggestions,
	})
}
