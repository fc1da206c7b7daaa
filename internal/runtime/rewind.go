package runtime

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aretw0/quill/pkg/domain"
)

// Rewind is a reconstructed chain leading into a previously reached scene.
type Rewind struct {
	Chain
	// Degraded is set when the lead-in pages could not be reconstructed
	// and the chain holds only the target page.
	Degraded bool
}

// ResolveRewind rebuilds the linear run of pages that originally led into targetID.
// Only decision points are kept in maxAchieved, so the intermediate linear scenes
// are recovered by tracing the predecessor's choices. The cursor lands on the target page.
func ResolveRewind(ctx context.Context, g *Graph, targetID, rootID string, maxAchieved []string, logger *slog.Logger) (*Rewind, error) {
	target, err := g.Node(targetID)
	if err != nil {
		return nil, err
	}

	var lead []domain.Page
	degraded := true

	if pred, ok := predecessorOf(g, targetID, rootID, maxAchieved); ok {
		if start, found := continuation(g, pred, targetID); found {
			lead = walkLeadIn(ctx, g, start, targetID)
			degraded = false
		}
	}

	if degraded {
		logger.Debug("rewind reconstruction degraded to target page", "target", targetID)
	}

	pages := append(lead, domain.PageOf(target))
	return &Rewind{
		Chain: Chain{
			Pages:  pages,
			Final:  target,
			Cursor: len(pages) - 1,
		},
		Degraded: degraded,
	}, nil
}

// predecessorOf finds the decision point recorded just before targetID.
func predecessorOf(g *Graph, targetID, rootID string, maxAchieved []string) (*domain.Node, bool) {
	if targetID == rootID {
		return nil, false
	}

	idx := slices.Index(maxAchieved, targetID)
	switch {
	case idx > 0:
		pred, err := g.Node(maxAchieved[idx-1])
		if err != nil {
			return nil, false
		}
		return pred, true
	case idx == 0:
		root, err := g.Node(rootID)
		if err != nil || !root.HasEdgeTo(targetID) {
			return nil, false
		}
		return root, true
	}
	return nil, false
}

// continuation returns the first choice target of pred whose linear trace reaches targetID.
func continuation(g *Graph, pred *domain.Node, targetID string) (string, bool) {
	for _, c := range pred.Choices {
		if traceReaches(g, c.Target, targetID) {
			return c.Target, true
		}
	}
	return "", false
}

func traceReaches(g *Graph, from, targetID string) bool {
	visited := make(map[string]bool)
	cur := from
	for cur != "" && !visited[cur] {
		if cur == targetID {
			return true
		}
		visited[cur] = true

		node, err := g.Node(cur)
		if err != nil || !node.IsLinear() {
			return false
		}
		cur = node.Choices[0].Target
	}
	return false
}

// walkLeadIn emits a page per scene from start up to (excluding) targetID,
// stopping after the first scene that does not auto-advance.
func walkLeadIn(ctx context.Context, g *Graph, start, targetID string) []domain.Page {
	var pages []domain.Page
	visited := make(map[string]bool)
	cur := start
	for cur != "" && cur != targetID && !visited[cur] && ctx.Err() == nil {
		visited[cur] = true

		node, err := g.Node(cur)
		if err != nil {
			break
		}
		pages = append(pages, domain.PageOf(node))
		if !node.IsLinear() {
			break
		}
		cur = node.Choices[0].Target
	}
	return pages
}
