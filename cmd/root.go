package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gemini-cli",
	Short: "AI-assisted code editing and review",
	Long: `gemini-cli turns natural-language requests into structured,
line-addressed edit suggestions that can be previewed, filtered by
confidence, and safely applied.

Available commands:
  edit     - Request edit suggestions for a file and apply them
  analyze  - Run a code-quality review over a file or directory
  version  - Print version information`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}
