package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/editor"
	"github.com/Chilluba/gemini-cli/pkg/llm"
	"github.com/Chilluba/gemini-cli/pkg/utils"
)

var (
	editModelFlag      string
	editSkipPromptFlag bool
	editDryRunFlag     bool
	editNoBackupFlag   bool
	editContextFlag    []string
)

var editCmd = &cobra.Command{
	Use:   "edit [file] [instruction]",
	Short: "Request edit suggestions for a file and apply them",
	Long: `Sends the file and a natural-language instruction to the model,
previews the returned line-addressed suggestions, and applies the ones that
meet the confidence threshold after confirmation.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]
		instruction := strings.Join(args[1:], " ")

		logger := utils.GetLogger(editSkipPromptFlag)

		cfg, err := config.LoadOrInitConfig(editSkipPromptFlag)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if editModelFlag != "" {
			cfg.Model = editModelFlag
		}
		cfg.DryRun = editDryRunFlag
		if editNoBackupFlag {
			cfg.EnableBackups = false
		}

		provider := llm.NewProvider(cfg.Model)

		result, err := editor.ProcessEdit(cmd.Context(), filePath, instruction, editContextFlag, cfg, provider, logger)
		if err != nil {
			return err
		}
		if result.Degraded {
			logger.LogUserInteraction("Analysis degraded; review the file manually.")
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editModelFlag, "model", "m", "", "Model name to use for suggestions")
	editCmd.Flags().BoolVar(&editSkipPromptFlag, "skip-prompt", false, "Skip user prompt for applying changes")
	editCmd.Flags().BoolVar(&editDryRunFlag, "dry-run", false, "Preview suggestions without writing any files")
	editCmd.Flags().BoolVar(&editNoBackupFlag, "no-backup", false, "Do not write a backup before applying changes")
	editCmd.Flags().StringSliceVarP(&editContextFlag, "context", "c", nil, "Additional context files to include in the request")
}
