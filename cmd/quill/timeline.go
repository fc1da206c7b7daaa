package main

import (
	"os"

	"github.com/aretw0/quill/internal/cli"
	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [story]",
	Short: "Replay choices and print the rewindable timeline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		raw, _ := cmd.Flags().GetString("choices")
		choices, err := parseChoices(raw)
		if err != nil {
			return err
		}
		opts.Choices = choices
		return cli.RunTimeline(cmd.Context(), opts, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().String("choices", "", "Comma-separated choices to replay (e.g. 1,2,1)")
}
