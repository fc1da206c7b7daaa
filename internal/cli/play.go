package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/internal/presentation/tui"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/observability"
	"github.com/aretw0/quill/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// imageWait bounds how long the text runner holds a frame for an illustration.
const imageWait = 3 * time.Second

// RunPlay starts an interactive playthrough on stdin/stdout.
func RunPlay(opts RunOptions) error {
	return runPlay(context.Background(), opts, os.Stdin, os.Stdout)
}

func runPlay(parent context.Context, opts RunOptions, in io.Reader, out io.Writer) error {
	cfg, err := settings(opts)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx := NewSignalContext(parent)
	defer ctx.Cancel()

	var hookSets []domain.LifecycleHooks
	if opts.Debug {
		hookSets = append(hookSets, observability.LogHooks(logger))
	}
	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}
		hookSets = append(hookSets, metrics.Hooks())
		if _, err := startMetricsServer(ctx, opts.MetricsAddr, reg, logger); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	engine, err := createEngine(cfg, logger, observability.Combine(hookSets...))
	if err != nil {
		return err
	}

	session := engine.NewSession()
	defer session.Close()

	r := runner.New(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(opts, engine, in, out)),
		runner.WithAutoStart(true),
		runner.WithImageWait(imageWait),
	)

	err = r.Run(ctx, session)
	if isInterrupted(err) {
		if !opts.JSON {
			if sig := ctx.Signal(); sig != nil {
				fmt.Fprintln(out)
				printSystemMessage(out, "Interrupted at '%s'.", session.Pointer())
			}
		}
		return nil
	}
	return err
}

// createHandler picks JSON lines, rendered text, or plain text output.
func createHandler(opts RunOptions, engine *quill.Engine, in io.Reader, out io.Writer) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(in, out)
	}
	if !isTerminal(out) {
		return runner.NewTextHandler(in, out)
	}

	if !opts.NoBanner {
		tui.PrintBanner(out, quill.Version)
		if engine.Name != "" {
			printSystemMessage(out, "Playing '%s'.", engine.Name)
		}
	}
	return runner.NewTextHandler(in, out,
		runner.WithTextHandlerRenderer(tui.NewRenderer()),
		runner.WithTextHandlerEnding(tui.EndingBanner),
	)
}
