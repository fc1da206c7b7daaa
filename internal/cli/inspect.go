package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/quill/internal/compiler"
	"github.com/aretw0/quill/internal/logging"
	"github.com/aretw0/quill/internal/presentation/graph"
	"github.com/aretw0/quill/internal/validator"
	loamAdapter "github.com/aretw0/quill/pkg/adapters/loam"
	"github.com/aretw0/quill/pkg/domain"
)

// RunGraph writes the Mermaid diagram of the story to w.
// When choices are given, the replayed path is overlaid on the graph.
func RunGraph(ctx context.Context, opts RunOptions, w io.Writer) error {
	cfg, err := settings(opts)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	cfg.Images.Enabled = false

	engine, err := createEngine(cfg, logger, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	nodes, err := engine.Inspect()
	if err != nil {
		return fmt.Errorf("error inspecting graph: %w", err)
	}

	var overlay *graph.GraphOverlay
	if len(opts.Choices) > 0 {
		s := engine.NewSession()
		defer s.Close()
		if err := Replay(ctx, s, opts.Choices); err != nil {
			return err
		}
		overlay = &graph.GraphOverlay{
			VisitedNodes: append([]string{engine.Root()}, s.MaxAchievedHistory()...),
			CurrentNode:  s.Pointer(),
		}
	}

	fmt.Fprint(w, graph.GenerateMermaid(nodes, engine.Root(), overlay))
	return nil
}

// RunValidate crawls the story from its root and reports problems to w.
func RunValidate(opts RunOptions, w io.Writer) error {
	cfg, err := settings(opts)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	cfg.Images.Enabled = false

	engine, err := createEngine(cfg, logger, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	report, err := validator.Check(engine.Loader(), compiler.NewParser(), engine.Root())
	if err != nil {
		return err
	}
	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	if err := report.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Story is valid: %d scenes reachable from %q.\n", len(report.Reachable), engine.Root())
	return nil
}

// RunTimeline replays the given choices and prints the resulting timeline to w.
func RunTimeline(ctx context.Context, opts RunOptions, w io.Writer) error {
	cfg, err := settings(opts)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	cfg.Images.Enabled = false

	engine, err := createEngine(cfg, logger, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	s := engine.NewSession()
	defer s.Close()
	if err := Replay(ctx, s, opts.Choices); err != nil {
		return err
	}

	for _, e := range s.Timeline() {
		marker := " "
		if e.Current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d. %s (%s)\n", marker, e.Index+1, e.Title, e.NodeID)
	}
	v := s.View()
	if v.Ending {
		fmt.Fprintf(w, "ended: %s %s\n", v.EndingType, v.Message)
	}
	return nil
}

// RunExport writes the story as Markdown scenes under dir and returns the scene count.
func RunExport(ctx context.Context, opts RunOptions, dir string) (int, error) {
	cfg, err := settings(opts)
	if err != nil {
		return 0, err
	}
	cfg.Images.Enabled = false

	engine, err := createEngine(cfg, logging.NewNop(), domain.LifecycleHooks{})
	if err != nil {
		return 0, err
	}
	nodes, err := engine.Inspect()
	if err != nil {
		return 0, fmt.Errorf("error inspecting graph: %w", err)
	}
	if err := loamAdapter.ExportDir(ctx, dir, nodes); err != nil {
		return 0, err
	}
	return len(nodes), nil
}
