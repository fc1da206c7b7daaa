package dsl

import "github.com/aretw0/quill/pkg/domain"

// NodeBuilder provides a fluent API for configuring a scene.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Text sets the narrative of the scene.
func (n *NodeBuilder) Text(content string) *NodeBuilder {
	n.node.Text = content
	return n
}

// Title sets the short label shown in the timeline.
func (n *NodeBuilder) Title(title string) *NodeBuilder {
	n.node.Title = title
	return n
}

// Image sets the illustration seed.
func (n *NodeBuilder) Image(seed string) *NodeBuilder {
	n.node.ImageSeed = seed
	return n
}

// Go adds an unlabelled choice to target. A scene with a single choice auto-advances.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	return n.Choice("", target)
}

// Choice adds a labelled choice to target.
func (n *NodeBuilder) Choice(text, target string) *NodeBuilder {
	n.node.Choices = append(n.node.Choices, domain.Choice{Text: text, Target: target})
	return n
}

// Ending marks the scene as terminal.
func (n *NodeBuilder) Ending(kind domain.EndingType, message string) *NodeBuilder {
	n.node.Ending = true
	n.node.EndingType = kind
	n.node.Message = message
	return n
}

// Build returns the underlying domain.Node.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
