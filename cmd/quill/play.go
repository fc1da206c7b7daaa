package main

import (
	"github.com/aretw0/quill/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [story]",
	Short: "Play a story interactively",
	Long: `Starts the story at its root scene. Type a number to take a choice, enter for
the next page, 'p' for the previous one, 't' for the timeline and 'h' for help.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")
		if cmd.Flags().Changed("images") {
			opts.ImagesSet = true
			opts.Images, _ = cmd.Flags().GetBool("images")
		}
		return cli.RunPlay(opts)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	playCmd.Flags().Bool("images", false, "Generate illustrations (requires QUILL_API_KEY)")
	playCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	playCmd.Flags().Bool("no-banner", false, "Skip the banner")

	// 'quill' alone plays.
	rootCmd.RunE = playCmd.RunE
	rootCmd.Args = playCmd.Args
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}
