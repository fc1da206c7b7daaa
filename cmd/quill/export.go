package main

import (
	"fmt"

	"github.com/aretw0/quill/internal/cli"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [story] --out <dir>",
	Short: "Write a story as a directory of Markdown scenes",
	Long:  `Converts any story (usually a YAML/JSON bundle) into one Markdown file per scene, readable by 'quill play <dir>'.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return fmt.Errorf("--out is required")
		}
		n, err := cli.RunExport(cmd.Context(), runOptions(cmd, args), out)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d scenes to %s\n", n, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("out", "", "Destination directory")
}
