package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/quill/pkg/domain"
)

// GraphOverlay contains play state to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart from a list of scenes.
// Shapes:
// - Root: ((Circle))
// - Linear scene: (Rounded)
// - Ending: {{Hexagon}}, styled by ending type
// - Decision: [Rectangle]
// Choice labels annotate the edges. Overlay styles are applied if provided.
func GenerateMermaid(nodes []domain.Node, rootID string, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var endings []domain.Node
	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == rootID:
			opener, closer = "((", "))"
		case node.Ending:
			opener, closer = "{{", "}}"
			endings = append(endings, node)
		case node.IsLinear():
			opener, closer = "(", ")"
		}

		label := node.ID
		if node.Title != "" {
			label = fmt.Sprintf("%s <br/> %s", node.ID, escapeLabel(node.Title))
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)

		for _, c := range node.Choices {
			if c.Target == "" {
				continue
			}
			safeTo := sanitizeMermaidID(c.Target)
			if node.IsLinear() {
				fmt.Fprintf(&sb, "    %s --> %s\n", safeID, safeTo)
				continue
			}
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, escapeLabel(c.Text), safeTo)
		}
	}

	if len(endings) > 0 {
		sb.WriteString("\n    %% Endings\n")
		sb.WriteString("    classDef win fill:#c8e6c9,stroke:#2e7d32,color:#000;\n")
		sb.WriteString("    classDef lose fill:#ffcdd2,stroke:#c62828,color:#000;\n")
		sb.WriteString("    classDef neutral fill:#eeeeee,stroke:#616161,color:#000;\n")
		for _, n := range endings {
			kind := n.EndingType
			if !kind.Valid() {
				kind = domain.EndingNeutral
			}
			fmt.Fprintf(&sb, "    class %s %s;\n", sanitizeMermaidID(n.ID), kind)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast on light fills regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
