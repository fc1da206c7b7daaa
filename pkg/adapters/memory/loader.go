package memory

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/aretw0/quill/pkg/domain"
)

// Loader serves a story held entirely in memory. Scenes are encoded once at
// construction; the listing is sorted so crawls and exports are reproducible.
type Loader struct {
	scenes map[string][]byte
	ids    []string
}

func newLoader(scenes map[string][]byte) *Loader {
	ids := make([]string, 0, len(scenes))
	for id := range scenes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return &Loader{scenes: scenes, ids: ids}
}

// NewLoader wraps raw scene JSON keyed by scene ID. The JSON is not checked
// here; malformed scenes surface when the engine reaches them.
func NewLoader(data map[string]string) *Loader {
	scenes := make(map[string][]byte, len(data))
	for id, raw := range data {
		scenes[id] = []byte(raw)
	}
	return newLoader(scenes)
}

// NewFromNodes encodes scenes built in Go (directly or through the DSL).
// Scenes without an ID, repeated IDs and unknown ending types are rejected
// up front instead of failing mid-playthrough.
func NewFromNodes(nodes ...domain.Node) (*Loader, error) {
	scenes := make(map[string][]byte, len(nodes))
	for i, n := range nodes {
		switch {
		case n.ID == "":
			return nil, fmt.Errorf("scene #%d has no ID", i+1)
		case scenes[n.ID] != nil:
			return nil, fmt.Errorf("scene %q defined twice", n.ID)
		case n.Ending && n.EndingType != "" && !n.EndingType.Valid():
			return nil, fmt.Errorf("scene %q: unknown ending type %q", n.ID, n.EndingType)
		}
		raw, err := json.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("failed to encode scene %q: %w", n.ID, err)
		}
		scenes[n.ID] = raw
	}
	return newLoader(scenes), nil
}

// GetNode implements ports.GraphLoader.
func (l *Loader) GetNode(id string) ([]byte, error) {
	raw, ok := l.scenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return raw, nil
}

// ListNodes implements ports.GraphLoader.
func (l *Loader) ListNodes() ([]string, error) {
	return slices.Clone(l.ids), nil
}
