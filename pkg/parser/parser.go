package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Chilluba/gemini-cli/pkg/types"
)

// FallbackRisk is the risk message reported when edit analysis degrades.
const FallbackRisk = "Analysis failed - manual review recommended"

const neutralComplexity = 5

// ExtractJSON extracts a JSON value from an LLM response that may contain
// markdown formatting or surrounding prose. This is a centralized utility to
// handle the common issue of LLMs wrapping JSON in code blocks.
func ExtractJSON(response string) (string, error) {
	// First try to extract from markdown code blocks
	if strings.Contains(response, "```json") {
		parts := strings.Split(response, "```json")
		if len(parts) > 1 {
			jsonPart := parts[1]
			end := strings.Index(jsonPart, "```")
			if end > 0 {
				jsonStr := strings.TrimSpace(jsonPart[:end])
				if jsonStr != "" {
					return jsonStr, nil
				}
			}
		}
	}

	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	// Look for first opening brace or bracket
	startBrace := strings.Index(response, "{")
	startBracket := strings.Index(response, "[")

	start := -1
	isArray := false

	if startBrace >= 0 && (startBracket < 0 || startBrace < startBracket) {
		start = startBrace
	} else if startBracket >= 0 {
		start = startBracket
		isArray = true
	}

	if start == -1 {
		return "", fmt.Errorf("no JSON object or array found (no opening brace or bracket)")
	}

	// Look for the matching closing brace/bracket from the end
	var end int
	if isArray {
		end = strings.LastIndex(response, "]")
	} else {
		end = strings.LastIndex(response, "}")
	}

	if end == -1 || end <= start {
		return "", fmt.Errorf("no matching closing brace/bracket found")
	}

	jsonStr := strings.TrimSpace(response[start : end+1])
	if jsonStr == "" {
		return "", fmt.Errorf("extracted JSON is empty")
	}

	return jsonStr, nil
}

// ParseEditAnalysis parses the oracle's response to an edit request. The
// returned bool reports whether the result is a degraded fallback. The parser
// never fails past its own boundary: oracle garbage always yields a valid,
// minimal FileEditAnalysis so downstream code can assume a well-formed shape.
func ParseEditAnalysis(response, languageTag string) (*types.FileEditAnalysis, bool) {
	fallback := &types.FileEditAnalysis{
		Language:     languageTag,
		Complexity:   neutralComplexity,
		Suggestions:  []types.EditSuggestion{},
		Risks:        []string{FallbackRisk},
		Dependencies: []string{},
	}

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return fallback, true
	}

	var analysis types.FileEditAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return fallback, true
	}

	if analysis.Language == "" {
		analysis.Language = languageTag
	}
	if analysis.Complexity < 1 || analysis.Complexity > 10 {
		analysis.Complexity = neutralComplexity
	}
	if analysis.Suggestions == nil {
		analysis.Suggestions = []types.EditSuggestion{}
	}
	if analysis.Risks == nil {
		analysis.Risks = []string{}
	}
	if analysis.Dependencies == nil {
		analysis.Dependencies = []string{}
	}

	return &analysis, false
}

// NeutralResult returns the degraded quality-analysis result for a file: a
// single documentation suggestion at line 1 with neutral metrics.
func NeutralResult(file string) *types.AnalysisResult {
	return &types.AnalysisResult{
		File:   file,
		Issues: []types.CodeIssue{},
		Suggestions: []types.CodeSuggestion{
			{
				Line:        1,
				Type:        types.SuggestionDocumentation,
				Description: "Manual review recommended - automated analysis failed",
			},
		},
		Metrics: types.CodeMetrics{
			Complexity:           neutralComplexity,
			MaintainabilityIndex: 50,
			Performance:          "fair",
			Security:             "moderate",
		},
	}
}

// ParseQualityAnalysis parses the oracle's response to a quality review. The
// returned bool reports whether the result is a degraded fallback.
func ParseQualityAnalysis(response, file string) (*types.AnalysisResult, bool) {
	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return NeutralResult(file), true
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return NeutralResult(file), true
	}

	result.File = file
	if result.Issues == nil {
		result.Issues = []types.CodeIssue{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []types.CodeSuggestion{}
	}
	if result.Metrics.Complexity < 1 || result.Metrics.Complexity > 10 {
		result.Metrics.Complexity = neutralComplexity
	}
	if result.Metrics.MaintainabilityIndex < 0 || result.Metrics.MaintainabilityIndex > 100 {
		result.Metrics.MaintainabilityIndex = 50
	}
	if result.Metrics.Performance == "" {
		result.Metrics.Performance = "fair"
	}
	if result.Metrics.Security == "" {
		result.Metrics.Security = "moderate"
	}

	return &result, false
}
