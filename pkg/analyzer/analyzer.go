package analyzer

import (
	"context"
	"fmt"
	"os"

	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/filediscovery"
	"github.com/Chilluba/gemini-cli/pkg/language"
	"github.com/Chilluba/gemini-cli/pkg/llm"
	"github.com/Chilluba/gemini-cli/pkg/parser"
	"github.com/Chilluba/gemini-cli/pkg/prompts"
	"github.com/Chilluba/gemini-cli/pkg/types"
	"github.com/Chilluba/gemini-cli/pkg/utils"
)

// Service runs quality analysis over files and aggregates the results.
type Service struct {
	cfg      *config.Config
	provider llm.Provider
	logger   *utils.Logger
}

// NewService creates a new analysis service instance.
func NewService(cfg *config.Config, provider llm.Provider, logger *utils.Logger) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		logger:   logger,
	}
}

// Summary holds the aggregate metrics across one analysis run.
type Summary struct {
	Files              int
	TotalIssues        int
	TotalSuggestions   int
	AvgComplexity      float64
	AvgMaintainability float64
	DegradedFiles      int
}

// AnalyzeFile analyzes a single file for code quality. A read, oracle, or
// parse failure for the file yields a neutral-metrics result, never an error:
// one file's failure must not abort a batch. An I/O or oracle failure leaves
// issues and suggestions empty; a malformed response degrades through the
// parser's fallback instead.
func (s *Service) AnalyzeFile(ctx context.Context, path string, fullAnalysis bool) (*types.AnalysisResult, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.LogError(fmt.Errorf("failed to read '%s' for analysis: %w", path, err))
		return emptyNeutralResult(path), true
	}

	languageTag := language.FromFilename(path)
	messages := prompts.BuildAnalysisMessages(path, string(data), languageTag, fullAnalysis)

	response, err := s.provider.GetResponse(ctx, messages, s.cfg)
	if err != nil {
		s.logger.LogError(fmt.Errorf("oracle request failed for '%s': %w", path, err))
		return emptyNeutralResult(path), true
	}

	return parser.ParseQualityAnalysis(response, path)
}

// emptyNeutralResult maps a per-file I/O or oracle failure to neutral
// metrics with nothing reported for that file.
func emptyNeutralResult(path string) *types.AnalysisResult {
	result := parser.NeutralResult(path)
	result.Suggestions = []types.CodeSuggestion{}
	return result
}

// AnalyzePath discovers files under root and analyzes each in turn. Files are
// processed one at a time to keep the oracle load bounded and the console
// output ordered. Only a bad root path is a hard error.
func (s *Service) AnalyzePath(ctx context.Context, root string, fullAnalysis bool) ([]*types.AnalysisResult, *Summary, error) {
	files, err := filediscovery.Discover(root)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no analyzable files found under '%s'", root)
	}

	results := make([]*types.AnalysisResult, 0, len(files))
	degradedCount := 0
	for _, file := range files {
		s.logger.LogProcessStep(fmt.Sprintf("Analyzing %s...", file))
		result, degraded := s.AnalyzeFile(ctx, file, fullAnalysis)
		if degraded {
			degradedCount++
		}
		results = append(results, result)
	}

	summary := Summarize(results)
	summary.DegradedFiles = degradedCount

	if err := s.recordSession(root, summary); err != nil {
		s.logger.LogError(err)
	}

	return results, summary, nil
}

// Summarize computes the aggregate metrics across all results. The averages
// are advisory summaries only; no threshold triggers an error.
func Summarize(results []*types.AnalysisResult) *Summary {
	summary := &Summary{Files: len(results)}
	if len(results) == 0 {
		return summary
	}

	complexityTotal := 0
	maintainabilityTotal := 0
	for _, r := range results {
		summary.TotalIssues += len(r.Issues)
		summary.TotalSuggestions += len(r.Suggestions)
		complexityTotal += r.Metrics.Complexity
		maintainabilityTotal += r.Metrics.MaintainabilityIndex
	}

	summary.AvgComplexity = float64(complexityTotal) / float64(len(results))
	summary.AvgMaintainability = float64(maintainabilityTotal) / float64(len(results))
	return summary
}

func (s *Service) recordSession(root string, summary *Summary) error {
	return recordAnalysisSession(s.cfg, root, summary)
}
