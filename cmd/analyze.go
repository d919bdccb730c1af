package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chilluba/gemini-cli/pkg/analyzer"
	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/llm"
	"github.com/Chilluba/gemini-cli/pkg/utils"
)

var (
	analyzeModelFlag      string
	analyzeSkipPromptFlag bool
	analyzeFullFlag       bool
	analyzeFixFlag        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Run a code-quality review over a file or directory",
	Long: `Analyzes a file, or every recognized code file under a directory,
and reports issues, suggestions, and aggregate metrics. A failure on one
file never aborts the batch; that file is reported with neutral metrics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		logger := utils.GetLogger(analyzeSkipPromptFlag)

		cfg, err := config.LoadOrInitConfig(analyzeSkipPromptFlag)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if analyzeModelFlag != "" {
			cfg.Model = analyzeModelFlag
		}

		provider := llm.NewProvider(cfg.Model)
		service := analyzer.NewService(cfg, provider, logger)

		results, summary, err := service.AnalyzePath(cmd.Context(), root, analyzeFullFlag)
		if err != nil {
			return err
		}

		for _, result := range results {
			logger.LogUserInteraction(fmt.Sprintf("%s: %d issue(s), %d suggestion(s), complexity %d/10, maintainability %d/100",
				result.File, len(result.Issues), len(result.Suggestions),
				result.Metrics.Complexity, result.Metrics.MaintainabilityIndex))
			for _, issue := range result.Issues {
				logger.LogUserInteraction(fmt.Sprintf("  %s:%d [%s/%s] %s",
					result.File, issue.Line, issue.Severity, issue.Type, issue.Message))
			}
		}

		logger.LogUserInteraction(fmt.Sprintf(
			"%d file(s) analyzed: %d issue(s), %d suggestion(s), avg complexity %.1f, avg maintainability %.1f",
			summary.Files, summary.TotalIssues, summary.TotalSuggestions,
			summary.AvgComplexity, summary.AvgMaintainability))
		if summary.DegradedFiles > 0 {
			logger.LogUserInteraction(fmt.Sprintf("%d file(s) could not be analyzed and carry neutral metrics.", summary.DegradedFiles))
		}

		if analyzeFixFlag {
			analyzer.RunAutoFix(results, logger)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeModelFlag, "model", "m", "", "Model name to use for analysis")
	analyzeCmd.Flags().BoolVar(&analyzeSkipPromptFlag, "skip-prompt", false, "Skip user prompts")
	analyzeCmd.Flags().BoolVar(&analyzeFullFlag, "full", false, "Widen the review to architecture and testing commentary")
	analyzeCmd.Flags().BoolVar(&analyzeFixFlag, "fix", false, "Present style and maintainability issues for acknowledgement")
}
