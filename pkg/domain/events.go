package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSequenceLoaded EventType = "sequence_loaded"
	EventChoice         EventType = "choice"
	EventRewind         EventType = "rewind"
	EventImage          EventType = "image"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// SequenceEvent is emitted whenever a resolved sequence is applied to the session.
type SequenceEvent struct {
	EventBase
	StartID  string        `json:"start_id"`
	FinalID  string        `json:"final_id"`
	Pages    int           `json:"pages"`
	Ending   bool          `json:"ending,omitempty"`
	Broken   bool          `json:"broken,omitempty"`
	Duration time.Duration `json:"duration"`
}

// ChoiceEvent is emitted when the player takes a choice.
type ChoiceEvent struct {
	EventBase
	FromID string `json:"from_id"`
	Index  int    `json:"index"`
	Target string `json:"target"`
}

// RewindEvent is emitted when the player rewinds to an earlier scene.
type RewindEvent struct {
	EventBase
	TargetID string `json:"target_id"`
	// Degraded is true when only the target page could be reconstructed.
	Degraded bool `json:"degraded,omitempty"`
}

// ImageEvent is emitted when an illustration request settles.
type ImageEvent struct {
	EventBase
	Seed     string        `json:"seed"`
	Fallback bool          `json:"fallback,omitempty"`
	Stale    bool          `json:"stale,omitempty"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSequenceLoaded func(context.Context, *SequenceEvent)
	OnChoice         func(context.Context, *ChoiceEvent)
	OnRewind         func(context.Context, *RewindEvent)
	OnImage          func(context.Context, *ImageEvent)
}
