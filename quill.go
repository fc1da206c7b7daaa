package quill

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/quill/internal/runtime"
	"github.com/aretw0/quill/pkg/adapters/bundle"
	loamAdapter "github.com/aretw0/quill/pkg/adapters/loam"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/ports"
)

// Engine is the high-level entry point for the Quill library.
// It binds a story graph to playback settings and hands out independent sessions.
type Engine struct {
	loader        ports.GraphLoader
	graph         *runtime.Graph
	root          string
	images        ports.ImageProvider
	imagesEnabled bool
	imageTimeout  time.Duration
	hooks         domain.LifecycleHooks
	logger        *slog.Logger
	Name          string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom GraphLoader, bypassing story path detection.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRootNode configures the scene a new game starts from (default: "start").
func WithRootNode(nodeID string) Option {
	return func(e *Engine) {
		e.root = nodeID
	}
}

// WithImageProvider sets the illustration backend.
func WithImageProvider(p ports.ImageProvider) Option {
	return func(e *Engine) {
		e.images = p
	}
}

// WithImageGeneration toggles calls to the image provider.
// Enabling it without a provider puts every session in the error state.
func WithImageGeneration(enabled bool) Option {
	return func(e *Engine) {
		e.imagesEnabled = enabled
	}
}

// WithImageTimeout bounds each illustration request.
func WithImageTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.imageTimeout = d
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Quill Engine.
// storyPath may be a directory of Markdown scenes (read through Loam) or a single
// YAML/JSON story bundle. If WithLoader is provided, storyPath is only used as a label.
func New(storyPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		loader, name, err := openStory(storyPath)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
		eng.Name = name
	} else if storyPath != "" {
		eng.Name = filepath.Base(storyPath)
	}

	// A bundle may declare its own root; an explicit option still wins.
	if b, ok := eng.loader.(*bundle.Loader); ok && eng.root == "" {
		eng.root = b.Root()
	}
	if eng.root == "" {
		eng.root = runtime.DefaultRootNode
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("story", eng.Name)
	}

	eng.graph = runtime.NewGraph(eng.loader)
	return eng, nil
}

func openStory(storyPath string) (ports.GraphLoader, string, error) {
	if storyPath == "" {
		return nil, "", fmt.Errorf("storyPath is required when no custom loader is provided")
	}

	info, err := os.Stat(storyPath)
	if err != nil {
		return nil, "", fmt.Errorf("invalid story path: %w", err)
	}

	if info.IsDir() {
		loader, err := loamAdapter.Open(storyPath)
		if err != nil {
			return nil, "", err
		}
		abs, _ := filepath.Abs(storyPath)
		return loader, filepath.Base(abs), nil
	}

	switch strings.ToLower(filepath.Ext(storyPath)) {
	case ".yaml", ".yml", ".json":
		loader, err := bundle.Load(storyPath)
		if err != nil {
			return nil, "", err
		}
		name := loader.Title()
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(storyPath), filepath.Ext(storyPath))
		}
		return loader, name, nil
	}
	return nil, "", fmt.Errorf("unsupported story file %s: expected a directory or a .yaml/.json bundle", storyPath)
}

// NewSession creates an independent playthrough in the menu state.
func (e *Engine) NewSession() *Session {
	rt := runtime.NewSession(e.graph,
		runtime.WithRootNode(e.root),
		runtime.WithImageProvider(e.images),
		runtime.WithImageGeneration(e.imagesEnabled),
		runtime.WithImageTimeout(e.imageTimeout),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
	return &Session{rt: rt}
}

// Inspect returns every scene of the graph.
func (e *Engine) Inspect() ([]domain.Node, error) {
	return e.graph.Nodes()
}

// Loader returns the underlying graph loader.
func (e *Engine) Loader() ports.GraphLoader {
	return e.loader
}

// Root returns the scene new games start from.
func (e *Engine) Root() string {
	return e.root
}
