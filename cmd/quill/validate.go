package main

import (
	"fmt"
	"os"

	"github.com/aretw0/quill/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [story]",
	Short: "Check the story graph for consistency",
	Long:  `Crawls the graph from the root scene and reports dangling choices, dead ends and unreachable scenes.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.RunValidate(runOptions(cmd, args), os.Stdout); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
