package editor

import (
	"sort"
	"strings"

	"github.com/Chilluba/gemini-cli/pkg/types"
)

// ConfidenceThreshold is the minimum confidence for a suggestion to be applied.
const ConfidenceThreshold = 70

// FilterSuggestions returns the order-preserved sublist of suggestions that
// meet the confidence threshold and carry non-empty before/after line sets.
func FilterSuggestions(suggestions []types.EditSuggestion) []types.EditSuggestion {
	filtered := make([]types.EditSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Confidence < ConfidenceThreshold {
			continue
		}
		if len(s.OriginalLines) == 0 || len(s.SuggestedLines) == 0 {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// ApplySuggestions splices the accepted suggestions into the line sequence
// and returns the new sequence. Suggestions are applied in descending
// startLine order so a splice never invalidates the indices of the splices
// still to come below it. A suggestion whose range no longer fits the current
// sequence (after earlier splices changed its length) is skipped entirely
// rather than applied partially.
func ApplySuggestions(lines []string, suggestions []types.EditSuggestion) []string {
	if len(suggestions) == 0 {
		return lines
	}

	ordered := make([]types.EditSuggestion, len(suggestions))
	copy(ordered, suggestions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartLine > ordered[j].StartLine
	})

	result := make([]string, len(lines))
	copy(result, lines)

	for _, s := range ordered {
		startIdx := s.StartLine - 1
		endIdx := s.EndLine - 1
		if startIdx < 0 || startIdx > endIdx || endIdx >= len(result) {
			continue
		}

		spliced := make([]string, 0, len(result)-(endIdx-startIdx+1)+len(s.SuggestedLines))
		spliced = append(spliced, result[:startIdx]...)
		spliced = append(spliced, s.SuggestedLines...)
		spliced = append(spliced, result[endIdx+1:]...)
		result = spliced
	}

	return result
}

// ApplyToContent applies the accepted suggestions to full-file content,
// preserving the file's line structure.
func ApplyToContent(content string, suggestions []types.EditSuggestion) string {
	lines := strings.Split(content, "\n")
	return strings.Join(ApplySuggestions(lines, suggestions), "\n")
}
