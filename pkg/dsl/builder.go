package dsl

import (
	"fmt"
	"sort"

	"github.com/aretw0/quill/pkg/adapters/memory"
	"github.com/aretw0/quill/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	nodes map[string]*NodeBuilder
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new scene in the graph.
// If the scene already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.Node{
			ID: id,
		},
		builder: b,
	}
	b.nodes[id] = nb
	return nb
}

// Nodes returns the scenes built so far, sorted by ID.
func (b *Builder) Nodes() []domain.Node {
	ids := make([]string, 0, len(b.nodes))
	for id := range b.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make([]domain.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, b.nodes[id].node)
	}
	return nodes
}

// Build compiles the graph into a memory Loader.
func (b *Builder) Build() (*memory.Loader, error) {
	loader, err := memory.NewFromNodes(b.Nodes()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

// MustBuild is like Build but panics on error. Intended for tests and examples.
func (b *Builder) MustBuild() *memory.Loader {
	loader, err := b.Build()
	if err != nil {
		panic(err)
	}
	return loader
}
