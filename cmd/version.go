package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using -ldflags.
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = ""
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gemini-cli %s\n", version)
		fmt.Printf("  go:     %s\n", runtime.Version())
		fmt.Printf("  built:  %s\n", buildDate)
		if gitCommit != "" {
			fmt.Printf("  commit: %s\n", gitCommit)
		}
	},
}
