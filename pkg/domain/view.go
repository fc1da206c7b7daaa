package domain

import "fmt"

// Status is the top-level state of a playback session.
type Status string

const (
	StatusMenu    Status = "menu"
	StatusLoading Status = "loading"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
	StatusError   Status = "error"
)

// View is a snapshot of everything a presentation layer needs to draw the session.
type View struct {
	Status Status `json:"status"`
	NodeID string `json:"node_id,omitempty"`
	Text   string `json:"text,omitempty"`

	// ImageURL is nil when the page has no illustration (yet).
	ImageURL *string `json:"image_url"`

	// Choices are only populated on the last page of a sequence.
	Choices []Choice `json:"choices,omitempty"`

	Ending     bool       `json:"ending,omitempty"`
	EndingType EndingType `json:"ending_type,omitempty"`
	Message    string     `json:"message,omitempty"`
	Won        bool       `json:"won,omitempty"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`

	PageIndex   int  `json:"page_index"`
	PageCount   int  `json:"page_count"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// LastPage reports whether the view shows the final page of its sequence.
func (v View) LastPage() bool {
	return v.PageCount > 0 && v.PageIndex == v.PageCount-1
}

// TimelineEntry is one rewindable point of the max-achieved path.
type TimelineEntry struct {
	Index   int    `json:"index"`
	NodeID  string `json:"node_id"`
	Title   string `json:"title"`
	Current bool   `json:"current"`
}

// BrokenSequenceNode builds the synthetic terminal scene shown when traversal hits a missing node.
func BrokenSequenceNode(missingID string) *Node {
	return &Node{
		ID:         "__error__",
		Title:      "Error",
		Text:       fmt.Sprintf("Error: Story sequence broken. Node %q is missing.", missingID),
		Ending:     true,
		EndingType: EndingLose,
		Message:    "Fatal error.",
	}
}
