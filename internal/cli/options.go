package cli

import (
	"github.com/aretw0/quill/internal/config"
)

// RunOptions collects the flags shared by the CLI commands.
// Flags win over the config file; the config file wins over defaults.
type RunOptions struct {
	ConfigPath string
	StoryPath  string
	Root       string

	// Images is only applied when ImagesSet is true.
	Images    bool
	ImagesSet bool

	Debug       bool
	JSON        bool
	MetricsAddr string
	NoBanner    bool

	// Choices replays a playthrough before inspecting it (1-based, like the prompt).
	Choices []int
}

// settings merges the config file with the flags.
func settings(opts RunOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.StoryPath != "" {
		cfg.Story = opts.StoryPath
	}
	if cfg.Story == "" {
		cfg.Story = "."
	}
	if opts.Root != "" {
		cfg.Root = opts.Root
	}
	if opts.ImagesSet {
		cfg.Images.Enabled = opts.Images
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
