package runner

import (
	"log/slog"
	"time"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithAutoStart starts a game before the first frame instead of showing the menu.
func WithAutoStart(enabled bool) Option {
	return func(r *Runner) {
		r.AutoStart = enabled
	}
}

// WithImageWait bounds how long each frame waits for a pending illustration.
// Zero draws immediately.
func WithImageWait(d time.Duration) Option {
	return func(r *Runner) {
		r.ImageWait = d
	}
}
