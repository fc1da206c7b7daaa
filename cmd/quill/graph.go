package main

import (
	"os"

	"github.com/aretw0/quill/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [story]",
	Short: "Export the story graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the story. With --choices, the path
reached by replaying those choices is highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		raw, _ := cmd.Flags().GetString("choices")
		choices, err := parseChoices(raw)
		if err != nil {
			return err
		}
		opts.Choices = choices
		return cli.RunGraph(cmd.Context(), opts, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("choices", "", "Comma-separated choices to replay for the overlay (e.g. 1,2)")
}
