package runtime

import (
	"context"
	"log/slog"

	"github.com/aretw0/quill/pkg/domain"
)

// Chain is a resolved run of pages ending at a stopping point.
type Chain struct {
	Pages  []domain.Page
	Final  *domain.Node
	Cursor int
}

// ResolveForward walks from startID through linear scenes until a stopping point.
// One page is produced per visited scene and the cursor starts at the first page.
func ResolveForward(ctx context.Context, g *Graph, startID string, logger *slog.Logger) (*Chain, error) {
	visited := make(map[string]bool)
	var pages []domain.Page
	id := startID

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		visited[id] = true
		pages = append(pages, domain.PageOf(node))

		if node.IsStoppingPoint() {
			return &Chain{Pages: pages, Final: node}, nil
		}

		next := node.Choices[0].Target
		if next == "" {
			logger.Warn("linear scene has no target, stopping chain", "node_id", id)
			return &Chain{Pages: pages, Final: node}, nil
		}
		if visited[next] {
			logger.Warn("linear cycle detected, stopping chain", "node_id", id, "target", next)
			return &Chain{Pages: pages, Final: node}, nil
		}
		id = next
	}
}
