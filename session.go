package quill

import (
	"context"

	"github.com/aretw0/quill/internal/runtime"
	"github.com/aretw0/quill/pkg/domain"
)

// Session is one playthrough of a story.
// Commands may be issued from multiple goroutines; while a sequence is resolving,
// StartGame, Choose and RewindTo fail with domain.ErrResolutionInFlight.
type Session struct {
	rt *runtime.Session
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.rt.ID() }

// StartGame clears progress and opens the story at its root.
func (s *Session) StartGame(ctx context.Context) error { return s.rt.StartGame(ctx) }

// ResetChapter restarts the story from the root.
func (s *Session) ResetChapter(ctx context.Context) error { return s.rt.ResetChapter(ctx) }

// Choose takes a choice from the last page of the current sequence.
func (s *Session) Choose(ctx context.Context, index int) error { return s.rt.Choose(ctx, index) }

// RewindTo returns to a decision point from the timeline.
func (s *Session) RewindTo(ctx context.Context, nodeID string) error {
	return s.rt.RewindTo(ctx, nodeID)
}

// NextPage advances one page and reports whether the cursor moved.
func (s *Session) NextPage() bool { return s.rt.NextPage() }

// PreviousPage goes back one page and reports whether the cursor moved.
func (s *Session) PreviousPage() bool { return s.rt.PreviousPage() }

// ReturnToMenu abandons the current sequence.
func (s *Session) ReturnToMenu() { s.rt.ReturnToMenu() }

// View returns what should currently be on screen.
func (s *Session) View() domain.View { return s.rt.View() }

// Timeline lists the rewindable decision points.
func (s *Session) Timeline() []domain.TimelineEntry { return s.rt.Timeline() }

// Status returns the top-level session state.
func (s *Session) Status() domain.Status { return s.rt.Status() }

// Pointer returns the current progression pointer.
func (s *Session) Pointer() string { return s.rt.Pointer() }

// GameplayHistory returns the decision points of the current playthrough.
func (s *Session) GameplayHistory() []string { return s.rt.GameplayHistory() }

// MaxAchievedHistory returns the furthest path reached.
func (s *Session) MaxAchievedHistory() []string { return s.rt.MaxAchievedHistory() }

// Wait blocks until pending illustrations settle or ctx is done.
func (s *Session) Wait(ctx context.Context) error { return s.rt.Wait(ctx) }

// Close releases the session's background work.
func (s *Session) Close() { s.rt.Close() }
