package editor

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/Chilluba/gemini-cli/pkg/types"
)

func suggestion(start, end int, replacement ...string) types.EditSuggestion {
	return types.EditSuggestion{
		OriginalLines:  []string{"placeholder"},
		SuggestedLines: replacement,
		StartLine:      start,
		EndLine:        end,
		Confidence:     90,
	}
}

func TestApplySuggestionsIdentity(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	got := ApplySuggestions(lines, nil)
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("empty suggestion list must be the identity transform: %v", got)
	}
}

func TestApplySingleSuggestion(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	got := ApplySuggestions(lines, []types.EditSuggestion{suggestion(2, 3, "X")})
	want := []string{"a", "X", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplySuggestions = %v, want %v", got, want)
	}
}

func TestApplyDisjointSuggestions(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	suggestions := []types.EditSuggestion{
		suggestion(2, 2, "B2"),
		suggestion(4, 4, "D2"),
	}
	got := ApplySuggestions(lines, suggestions)
	want := []string{"a", "B2", "c", "D2", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplySuggestions = %v, want %v", got, want)
	}
}

func TestApplyOrderIndependence(t *testing.T) {
	// Valid non-overlapping suggestions produce the same content no matter
	// the input permutation; the descending sort makes order canonical.
	lines := []string{"l1", "l2", "l3", "l4", "l5", "l6"}
	suggestions := []types.EditSuggestion{
		suggestion(1, 1, "first"),
		suggestion(3, 4, "middle"),
		suggestion(6, 6, "last", "extra"),
	}
	want := ApplySuggestions(lines, suggestions)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]types.EditSuggestion, len(suggestions))
		copy(shuffled, suggestions)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ApplySuggestions(lines, shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("permutation %d changed result: %v vs %v", i, got, want)
		}
	}
}

func TestApplySkipsOutOfRange(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	suggestions := []types.EditSuggestion{
		suggestion(2, 10, "never"), // end beyond file
		suggestion(0, 1, "never"),  // start below 1
		suggestion(3, 2, "never"),  // inverted range
	}
	got := ApplySuggestions(lines, suggestions)
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("out-of-range suggestions must be skipped: %v", got)
	}
}

func TestApplyOverlapAfterLengthChange(t *testing.T) {
	// Ranges (1,1) and (3,5) on a 4-line file. Descending order applies
	// (3,5) first; its end index (4) is out of bounds for the 4-line file,
	// so it is skipped, then (1,1) applies normally. The higher suggestion
	// never splices partially.
	lines := []string{"a", "b", "c", "d"}
	suggestions := []types.EditSuggestion{
		suggestion(1, 1, "A1", "A2", "A3"),
		suggestion(3, 5, "X"),
	}
	got := ApplySuggestions(lines, suggestions)
	want := []string{"A1", "A2", "A3", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplySuggestions = %v, want %v", got, want)
	}
}

func TestApplyOverlappingRangesHigherWins(t *testing.T) {
	// Overlapping accepted suggestions: the higher startLine is applied
	// first against unmodified content; the lower one still fits the
	// shifted sequence here and is applied afterwards.
	lines := []string{"a", "b", "c", "d", "e"}
	suggestions := []types.EditSuggestion{
		suggestion(2, 4, "low"),
		suggestion(4, 5, "high"),
	}
	got := ApplySuggestions(lines, suggestions)
	// (4,5) first: [a b c high]; then (2,4): [a low]
	want := []string{"a", "low"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplySuggestions = %v, want %v", got, want)
	}
}

func TestApplyToContentPreservesUntouchedLines(t *testing.T) {
	content := "a\nb\nc\nd"
	got := ApplyToContent(content, []types.EditSuggestion{suggestion(2, 3, "X")})
	if got != "a\nX\nd" {
		t.Errorf("ApplyToContent = %q", got)
	}
}

func TestFilterSuggestionsConfidenceBoundary(t *testing.T) {
	suggestions := []types.EditSuggestion{
		{OriginalLines: []string{"x"}, SuggestedLines: []string{"y"}, StartLine: 1, EndLine: 1, Confidence: 69},
		{OriginalLines: []string{"x"}, SuggestedLines: []string{"y"}, StartLine: 2, EndLine: 2, Confidence: 70},
		{OriginalLines: []string{"x"}, SuggestedLines: []string{"y"}, StartLine: 3, EndLine: 3, Confidence: 100},
	}
	filtered := FilterSuggestions(suggestions)
	if len(filtered) != 2 {
		t.Fatalf("filtered = %d suggestions, want 2", len(filtered))
	}
	if filtered[0].Confidence != 70 || filtered[1].Confidence != 100 {
		t.Errorf("confidence 69 must be dropped, 70 retained: %+v", filtered)
	}
}

func TestFilterSuggestionsDropsEmptyLineSets(t *testing.T) {
	suggestions := []types.EditSuggestion{
		{OriginalLines: nil, SuggestedLines: []string{"y"}, StartLine: 1, EndLine: 1, Confidence: 95},
		{OriginalLines: []string{"x"}, SuggestedLines: nil, StartLine: 2, EndLine: 2, Confidence: 95},
		{OriginalLines: []string{"x"}, SuggestedLines: []string{"y"}, StartLine: 3, EndLine: 3, Confidence: 95},
	}
	filtered := FilterSuggestions(suggestions)
	if len(filtered) != 1 || filtered[0].StartLine != 3 {
		t.Errorf("filtered = %+v, want only the complete suggestion", filtered)
	}
}

func TestFilterSuggestionsPreservesOrder(t *testing.T) {
	suggestions := []types.EditSuggestion{
		suggestion(5, 5, "e"),
		suggestion(1, 1, "a"),
		suggestion(3, 3, "c"),
	}
	filtered := FilterSuggestions(suggestions)
	if len(filtered) != 3 {
		t.Fatalf("filtered = %d, want 3", len(filtered))
	}
	if filtered[0].StartLine != 5 || filtered[1].StartLine != 1 || filtered[2].StartLine != 3 {
		t.Errorf("filter must preserve order: %+v", filtered)
	}
}
