package cmd

import (
	"fmt"

	"github.com/ostafen/sniff/internal/env"
	"github.com/spf13/cobra"
)

const AppName = env.AppName

// Execute runs the CLI and returns the process exit code: 0 when every
// inspected file is text, 1 when any is binary or on error.
func Execute() int {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - guess whether files contain text or binary data",
	}

	rootCmd.AddCommand(DefineInspectCommand())
	rootCmd.AddCommand(DefineEncodingsCommand())
	rootCmd.AddCommand(DefineVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

// exitCode is raised to 1 by the inspect command when it sees binary data.
var exitCode int

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version:    %s\n", env.Version)
			fmt.Printf("Commit:     %s\n", env.CommitHash)
			fmt.Printf("Build Time: %s\n", env.BuildTime)
		},
	}
}
