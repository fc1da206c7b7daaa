package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/quill/pkg/domain"
)

// Loader adapts a Loam repository of scene documents to the GraphLoader interface.
// Each document is one scene: frontmatter carries the structure and the body is the page text.
type Loader struct {
	Repo *loam.TypedRepository[SceneMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[SceneMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it in a Loader.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric frontmatter consistent across Markdown and JSON documents.
	// The engine never writes to the story, so the repository is opened read-only.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[SceneMetadata](repo)), nil
}

// GetNode retrieves a scene and returns it as domain.Node JSON.
func (l *Loader) GetNode(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: loam get failed for %s: %w", domain.ErrNodeNotFound, id, err)
	}

	node := buildNode(doc.ID, doc.Data, doc.Content)

	bytes, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal node data: %w", err)
	}
	return bytes, nil
}

func buildNode(docID string, meta SceneMetadata, content string) domain.Node {
	rawID := meta.ID
	if rawID == "" {
		rawID = docID
	}

	seed := meta.Image
	if seed == "" {
		seed = meta.ImageSeed
	}

	node := domain.Node{
		ID:         trimExtension(rawID),
		Title:      meta.Title,
		Text:       strings.TrimSpace(content),
		ImageSeed:  seed,
		Ending:     meta.Ending,
		EndingType: domain.EndingType(meta.EndingType),
		Message:    meta.Message,
	}

	for _, c := range meta.Choices {
		target := c.To
		if target == "" {
			target = c.Target
		}
		node.Choices = append(node.Choices, domain.Choice{Text: c.Text, Target: target})
	}
	if meta.To != "" {
		node.Choices = append(node.Choices, domain.Choice{Target: meta.To})
	}

	return node
}

// ListNodes lists all scenes in the repository.
func (l *Loader) ListNodes() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
