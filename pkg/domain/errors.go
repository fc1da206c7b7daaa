package domain

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound is returned by loaders when a scene ID does not exist in the graph.
var ErrNodeNotFound = errors.New("node not found")

// ErrResolutionInFlight is returned when a command arrives while a sequence is being resolved.
var ErrResolutionInFlight = errors.New("resolution in flight")

// ErrChoiceUnavailable is returned when a choice cannot be taken from the current page.
var ErrChoiceUnavailable = errors.New("choice unavailable")

// ErrInvalidState is returned when a command is not accepted in the current session status.
var ErrInvalidState = errors.New("invalid state for command")

// ErrImageUnavailable is returned by image providers that produced no image.
var ErrImageUnavailable = errors.New("image unavailable")

// GraphIntegrityError is raised when traversal reaches a scene that cannot be loaded.
type GraphIntegrityError struct {
	NodeID string
	Cause  error
}

func (e *GraphIntegrityError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("story sequence broken: node %q is missing", e.NodeID)
	}
	return fmt.Sprintf("story sequence broken: node %q: %v", e.NodeID, e.Cause)
}

func (e *GraphIntegrityError) Unwrap() error {
	return e.Cause
}

// ImageGenerationError describes a failed illustration request.
// It is logged and replaced by a placeholder, never shown to the player.
type ImageGenerationError struct {
	Seed  string
	Cause error
}

func (e *ImageGenerationError) Error() string {
	return fmt.Sprintf("image generation failed for seed %q: %v", e.Seed, e.Cause)
}

func (e *ImageGenerationError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports a missing or invalid setting, with a hint for the operator.
type ConfigurationError struct {
	Setting string
	Hint    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Hint)
}
