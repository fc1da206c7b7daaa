package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/quill/pkg/domain"
)

// Player is the session surface the runner drives. *quill.Session satisfies it.
type Player interface {
	StartGame(ctx context.Context) error
	ResetChapter(ctx context.Context) error
	Choose(ctx context.Context, index int) error
	RewindTo(ctx context.Context, nodeID string) error
	NextPage() bool
	PreviousPage() bool
	ReturnToMenu()
	View() domain.View
	Timeline() []domain.TimelineEntry
	Wait(ctx context.Context) error
}

// Runner handles the play loop of a session using the provided IO strategy.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	AutoStart bool
	ImageWait time.Duration
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r
}

// errQuit ends the loop without error.
var errQuit = errors.New("quit")

// Run draws, reads and applies commands until the player quits, input ends, or ctx is done.
func (r *Runner) Run(ctx context.Context, p Player) error {
	if r.AutoStart {
		// A configuration error leaves the session in the error state, which is drawn below.
		if err := p.StartGame(ctx); err != nil && p.View().Status != domain.StatusError {
			return fmt.Errorf("failed to start game: %w", err)
		}
	}

	redraw := true
	for {
		if redraw {
			if err := r.draw(ctx, p, nil); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}

		line, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			redraw = false
			if err := r.Handler.SystemOutput(ctx, err.Error()); err != nil {
				return err
			}
			continue
		}

		redraw, err = r.apply(ctx, p, cmd)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			redraw = p.View().Status == domain.StatusError
			r.Logger.Debug("command refused", "command", cmd.Kind, "err", err)
			if err := r.Handler.SystemOutput(ctx, describe(err)); err != nil {
				return err
			}
		}
	}
}

// apply executes cmd and reports whether the view should be redrawn.
func (r *Runner) apply(ctx context.Context, p Player, cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdQuit:
		return false, errQuit
	case CmdHelp:
		return false, r.Handler.SystemOutput(ctx, helpText)
	case CmdNext:
		v := p.View()
		if v.Status == domain.StatusMenu {
			return true, p.StartGame(ctx)
		}
		if !p.NextPage() {
			return false, errors.New("no next page")
		}
		return true, nil
	case CmdPrevious:
		if !p.PreviousPage() {
			return false, errors.New("no previous page")
		}
		return true, nil
	case CmdChoose:
		return true, p.Choose(ctx, cmd.Index)
	case CmdRewind:
		return r.rewind(ctx, p, cmd)
	case CmdTimeline:
		return false, r.draw(ctx, p, p.Timeline())
	case CmdStart:
		return true, p.StartGame(ctx)
	case CmdReset:
		return true, p.ResetChapter(ctx)
	case CmdMenu:
		p.ReturnToMenu()
		return true, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
}

// rewind resolves the target against the timeline and refuses the scene being played.
func (r *Runner) rewind(ctx context.Context, p Player, cmd Command) (bool, error) {
	timeline := p.Timeline()

	var entry *domain.TimelineEntry
	if cmd.Target == "" {
		if cmd.Index >= len(timeline) {
			return false, fmt.Errorf("timeline has %d entries", len(timeline))
		}
		entry = &timeline[cmd.Index]
	} else {
		for i := range timeline {
			if timeline[i].NodeID == cmd.Target {
				entry = &timeline[i]
				break
			}
		}
		if entry == nil {
			return false, fmt.Errorf("%q is not on the timeline", cmd.Target)
		}
	}

	if entry.Current {
		return false, fmt.Errorf("already at %q", entry.Title)
	}
	return true, p.RewindTo(ctx, entry.NodeID)
}

func (r *Runner) draw(ctx context.Context, p Player, timeline []domain.TimelineEntry) error {
	if r.ImageWait > 0 && timeline == nil {
		waitCtx, cancel := context.WithTimeout(ctx, r.ImageWait)
		_ = p.Wait(waitCtx)
		cancel()
	}
	return r.Handler.Output(ctx, Frame{View: p.View(), Timeline: timeline})
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrResolutionInFlight):
		return "still loading, try again"
	case errors.Is(err, domain.ErrChoiceUnavailable):
		return "that choice is not available here"
	}
	return err.Error()
}
