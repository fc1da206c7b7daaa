package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/internal/config"
	"github.com/aretw0/quill/pkg/adapters/imagen"
	"github.com/aretw0/quill/pkg/domain"
)

// createEngine initializes a Quill engine with standard CLI conventions.
func createEngine(cfg *config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*quill.Engine, error) {
	engineOpts := []quill.Option{
		quill.WithLogger(logger),
		quill.WithLifecycleHooks(hooks),
		quill.WithImageGeneration(cfg.Images.Enabled),
	}

	root := cfg.Root
	if root == "" {
		if info, err := os.Stat(cfg.Story); err == nil && info.IsDir() {
			root = determineEntryPoint(cfg.Story)
		}
	}
	if root != "" {
		engineOpts = append(engineOpts, quill.WithRootNode(root))
	}

	if cfg.Images.Timeout > 0 {
		engineOpts = append(engineOpts, quill.WithImageTimeout(cfg.Images.Timeout))
	}

	// Without a key no provider is installed; the session then reports the
	// missing credential itself when generation is enabled.
	if cfg.Images.APIKey != "" {
		var clientOpts []imagen.Option
		if cfg.Images.Model != "" {
			clientOpts = append(clientOpts, imagen.WithModel(cfg.Images.Model))
		}
		if cfg.Images.Endpoint != "" {
			clientOpts = append(clientOpts, imagen.WithEndpoint(cfg.Images.Endpoint))
		}
		client, err := imagen.New(cfg.Images.APIKey, clientOpts...)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, quill.WithImageProvider(client))
	}

	engine, err := quill.New(cfg.Story, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// determineEntryPoint picks the root scene of a Markdown story directory:
// start, then prologue, then index, then a scene named after the directory.
func determineEntryPoint(dir string) string {
	candidates := []string{"start", "prologue", "index"}
	if abs, err := filepath.Abs(dir); err == nil {
		candidates = append(candidates, filepath.Base(abs))
	}
	for _, name := range candidates {
		if hasNode(dir, name) {
			return name
		}
	}
	return "start"
}

// hasNode checks if a scene exists as a file in the directory.
func hasNode(dir, nodeID string) bool {
	for _, ext := range []string{".md", ".yaml", ".json"} {
		if _, err := os.Stat(filepath.Join(dir, nodeID+ext)); err == nil {
			return true
		}
	}
	return false
}
