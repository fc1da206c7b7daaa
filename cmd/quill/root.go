package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/quill/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill plays branching, illustrated stories",
	Long: `Quill plays interactive fiction written as a graph of scenes, either a directory
of Markdown files or a single YAML/JSON story bundle.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("dir", "", "Story directory or bundle file (default: config 'story' or '.')")
	flags.String("config", "", "Path to the config file (default: ./quill.yaml if present)")
	flags.String("root", "", "Scene to start from")
	flags.Bool("debug", false, "Enable debug logging to stderr")
}

// runOptions reads the shared flags. A positional argument stands in for --dir.
func runOptions(cmd *cobra.Command, args []string) cli.RunOptions {
	opts := cli.RunOptions{}
	opts.StoryPath, _ = cmd.Flags().GetString("dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		opts.StoryPath = args[0]
	}
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.Root, _ = cmd.Flags().GetString("root")
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	return opts
}

// parseChoices turns "1,2,1" into []int{1, 2, 1}.
func parseChoices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	choices := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid choice %q: choices are numbered from 1", p)
		}
		choices = append(choices, n)
	}
	return choices, nil
}
