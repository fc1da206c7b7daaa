package domain

// EndingType classifies how a terminal scene concludes the story.
type EndingType string

const (
	EndingWin     EndingType = "win"
	EndingLose    EndingType = "lose"
	EndingNeutral EndingType = "neutral"
)

// Valid reports whether the ending type is one of the known values.
func (e EndingType) Valid() bool {
	switch e {
	case EndingWin, EndingLose, EndingNeutral:
		return true
	}
	return false
}

// Node represents a single scene of the story graph.
type Node struct {
	ID string `json:"id" yaml:"id"`

	// Title is the short label shown in the timeline. Optional.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Text is the narrative shown on the page for this scene.
	Text string `json:"text" yaml:"text"`

	// ImageSeed is the prompt fragment used to illustrate the scene.
	ImageSeed string `json:"image_seed,omitempty" yaml:"image_seed,omitempty"`

	// Choices are the outgoing edges, in display order.
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`

	Ending     bool       `json:"ending,omitempty" yaml:"ending,omitempty"`
	EndingType EndingType `json:"ending_type,omitempty" yaml:"ending_type,omitempty"`

	// Message is shown when the ending is reached.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Choice is a labelled edge to another scene.
type Choice struct {
	Text   string `json:"text" yaml:"text"`
	Target string `json:"target" yaml:"target"`
}

// IsLinear reports whether the scene auto-advances: exactly one choice and not an ending.
func (n *Node) IsLinear() bool {
	return !n.Ending && len(n.Choices) == 1
}

// IsStoppingPoint reports whether a sequence must end at this scene.
func (n *Node) IsStoppingPoint() bool {
	return !n.IsLinear()
}

// Won reports whether the scene is a winning ending.
func (n *Node) Won() bool {
	return n.Ending && n.EndingType == EndingWin
}

// HasEdgeTo reports whether any choice of the scene points directly at target.
func (n *Node) HasEdgeTo(target string) bool {
	for _, c := range n.Choices {
		if c.Target == target {
			return true
		}
	}
	return false
}

// Page is one displayable unit of a resolved sequence.
type Page struct {
	NodeID    string `json:"node_id"`
	Text      string `json:"text"`
	ImageSeed string `json:"image_seed,omitempty"`
}

// PageOf builds the page for a scene.
func PageOf(n *Node) Page {
	return Page{NodeID: n.ID, Text: n.Text, ImageSeed: n.ImageSeed}
}
