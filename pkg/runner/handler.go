package runner

import (
	"context"

	"github.com/aretw0/quill/pkg/domain"
)

// Frame is everything the runner hands to a handler for one redraw.
type Frame struct {
	View domain.View `json:"view"`

	// Timeline is only set when the player asked for it.
	Timeline []domain.TimelineEntry `json:"timeline,omitempty"`
}

// IOHandler defines the strategy for interacting with the player.
// This allows switching between Text (CLI) and JSON (structured) modes.
type IOHandler interface {
	// Output presents a frame.
	Output(ctx context.Context, frame Frame) error

	// Input reads the next command line.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (hints, refused commands).
	// This is distinct from story content.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms narrative text before it is written (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)
