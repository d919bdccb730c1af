package editor

import (
	"context"
	"fmt"
	"os"

	"github.com/Chilluba/gemini-cli/pkg/changetracker"
	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/language"
	"github.com/Chilluba/gemini-cli/pkg/llm"
	"github.com/Chilluba/gemini-cli/pkg/parser"
	"github.com/Chilluba/gemini-cli/pkg/prompts"
	"github.com/Chilluba/gemini-cli/pkg/types"
	"github.com/Chilluba/gemini-cli/pkg/utils"
)

// EditResult reports the outcome of one edit invocation.
type EditResult struct {
	Analysis *types.FileEditAnalysis
	Accepted []types.EditSuggestion
	Degraded bool // oracle or parse failure, fallback analysis returned
	Applied  bool
	Backup   string
}

// ProcessEdit runs the full suggestion lifecycle for one file: build the
// oracle request, parse the response defensively, filter by confidence, and
// apply the accepted suggestions after a single confirmation. An oracle
// failure degrades to an empty suggestion set; only a missing target file or
// a write failure surfaces as a hard error.
func ProcessEdit(ctx context.Context, filePath, instruction string, contextFiles []string, cfg *config.Config, provider llm.Provider, logger *utils.Logger) (*EditResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	content := string(data)
	languageTag := language.FromFilename(filePath)

	logger.LogProcessStep(fmt.Sprintf("Analyzing %s (%s)...", filePath, language.DisplayName(languageTag)))

	messages := prompts.BuildEditMessages(filePath, content, languageTag, instruction, contextFiles, logger)

	var analysis *types.FileEditAnalysis
	degraded := false
	response, err := provider.GetResponse(ctx, messages, cfg)
	if err != nil {
		// Oracle failure and cancellation take the same degrade path as a
		// malformed response.
		logger.LogError(fmt.Errorf("oracle request failed: %w", err))
		analysis, degraded = parser.ParseEditAnalysis("", languageTag)
	} else {
		analysis, degraded = parser.ParseEditAnalysis(response, languageTag)
	}

	result := &EditResult{Analysis: analysis, Degraded: degraded}

	result.Accepted = FilterSuggestions(analysis.Suggestions)
	if dropped := len(analysis.Suggestions) - len(result.Accepted); dropped > 0 {
		logger.Logf("Filtered out %d low-confidence or empty suggestions", dropped)
	}

	for _, risk := range analysis.Risks {
		logger.LogUserInteraction(fmt.Sprintf("Risk: %s", risk))
	}

	if len(result.Accepted) == 0 {
		logger.LogUserInteraction("No applicable suggestions.")
		return result, nil
	}

	updated := ApplyToContent(content, result.Accepted)

	logger.LogUserInteraction(RenderSuggestions(filePath, result.Accepted))
	logger.LogUserInteraction(RenderDiff(content, updated))

	if cfg.DryRun {
		logger.LogUserInteraction("Dry run: no changes written.")
		return result, nil
	}

	// Non-interactive runs accept the batch; interactive runs default to no.
	prompt := fmt.Sprintf("Apply %d suggestion(s) to %s?", len(result.Accepted), filePath)
	if !logger.AskForConfirmation(prompt, cfg.SkipPrompt, false) {
		logger.LogUserInteraction("Changes discarded.")
		return result, nil
	}

	if cfg.EnableBackups {
		backupPath, backupErr := changetracker.CreateBackup(filePath)
		if backupErr != nil {
			return result, fmt.Errorf("refusing to write without backup: %w", backupErr)
		}
		result.Backup = backupPath
		logger.Logf("Created backup of '%s' at '%s'", filePath, backupPath)
	}

	if err := os.WriteFile(filePath, []byte(updated), 0644); err != nil {
		return result, fmt.Errorf("failed to write updated file '%s': %w", filePath, err)
	}
	result.Applied = true
	logger.LogUserInteraction(fmt.Sprintf("Applied %d suggestion(s) to %s.", len(result.Accepted), filePath))

	if err := changetracker.RecordSession(changetracker.SessionRecord{
		SessionID:   cfg.SessionID,
		Kind:        "edit",
		Target:      filePath,
		Model:       cfg.Model,
		Suggestions: len(result.Accepted),
		Applied:     true,
	}); err != nil {
		logger.LogError(err)
	}

	return result, nil
}
