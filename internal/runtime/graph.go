package runtime

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/quill/internal/compiler"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/ports"
)

// Graph resolves scene IDs to parsed nodes through a GraphLoader.
// Parsed nodes are cached; the story is static for the lifetime of a Graph.
type Graph struct {
	loader ports.GraphLoader
	parser *compiler.Parser

	mu    sync.RWMutex
	cache map[string]*domain.Node
}

// NewGraph creates a graph view over loader.
func NewGraph(loader ports.GraphLoader) *Graph {
	return &Graph{
		loader: loader,
		parser: compiler.NewParser(),
		cache:  make(map[string]*domain.Node),
	}
}

// Node returns the scene with the given ID.
// Any failure to load or parse is reported as a *domain.GraphIntegrityError.
func (g *Graph) Node(id string) (*domain.Node, error) {
	g.mu.RLock()
	node, ok := g.cache[id]
	g.mu.RUnlock()
	if ok {
		return node, nil
	}

	raw, err := g.loader.GetNode(id)
	if err != nil {
		return nil, &domain.GraphIntegrityError{NodeID: id, Cause: err}
	}
	node, err = g.parser.Parse(raw)
	if err != nil {
		return nil, &domain.GraphIntegrityError{NodeID: id, Cause: err}
	}
	if node.ID != id {
		return nil, &domain.GraphIntegrityError{NodeID: id, Cause: fmt.Errorf("loader returned node %q", node.ID)}
	}

	g.mu.Lock()
	g.cache[id] = node
	g.mu.Unlock()
	return node, nil
}

// Nodes loads every scene listed by the loader.
func (g *Graph) Nodes() ([]domain.Node, error) {
	ids, err := g.loader.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	nodes := make([]domain.Node, 0, len(ids))
	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *n)
	}
	return nodes, nil
}

// Has reports whether id resolves to a loadable scene.
func (g *Graph) Has(id string) bool {
	_, err := g.Node(id)
	return err == nil
}

// missingNodeID extracts the scene ID from an integrity error, if err is one.
func missingNodeID(err error) (string, bool) {
	var gie *domain.GraphIntegrityError
	if errors.As(err, &gie) {
		return gie.NodeID, true
	}
	return "", false
}
