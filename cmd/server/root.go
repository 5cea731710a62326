package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Commands are constructed per call so
// tests get fresh flag state.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "notequiz",
		Short:         "Notes API that derives study questions from note text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file (default: ./config.yaml if present)")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newQuizCmd(),
	)
	return root
}
