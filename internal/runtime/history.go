package runtime

import (
	"log/slog"
	"slices"
)

// History keeps the current playthrough path and the furthest path reached in the session.
// Both hold decision-point IDs only.
type History struct {
	gameplay    []string
	maxAchieved []string
	logger      *slog.Logger
}

// NewHistory returns an empty tracker.
func NewHistory(logger *slog.Logger) *History {
	return &History{logger: logger}
}

// RecordChoice appends id to the gameplay path unless already present, then promotes
// the gameplay path to max-achieved when it is longer, or as long but different.
func (h *History) RecordChoice(id string) {
	if !slices.Contains(h.gameplay, id) {
		h.gameplay = append(h.gameplay, id)
	}

	if len(h.gameplay) > len(h.maxAchieved) ||
		(len(h.gameplay) == len(h.maxAchieved) && !slices.Equal(h.gameplay, h.maxAchieved)) {
		h.maxAchieved = slices.Clone(h.gameplay)
	}
}

// RewindTo truncates the gameplay path to everything strictly before target.
// Max-achieved is left untouched.
func (h *History) RewindTo(target, root string) {
	if target == root {
		h.gameplay = nil
		return
	}

	idx := slices.Index(h.maxAchieved, target)
	if idx < 0 {
		h.logger.Warn("rewind target not in achieved history, clearing path", "target", target)
		h.gameplay = nil
		return
	}
	h.gameplay = slices.Clone(h.maxAchieved[:idx])
}

// Reset clears both paths.
func (h *History) Reset() {
	h.gameplay = nil
	h.maxAchieved = nil
}

// Gameplay returns a copy of the current path.
func (h *History) Gameplay() []string {
	return slices.Clone(h.gameplay)
}

// MaxAchieved returns a copy of the furthest path.
func (h *History) MaxAchieved() []string {
	return slices.Clone(h.maxAchieved)
}
