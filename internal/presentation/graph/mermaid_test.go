package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/quill/internal/presentation/graph"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []domain.Node
		contains []string
		excludes []string
	}{
		{
			name: "Root Shape",
			nodes: []domain.Node{
				{ID: "start", Choices: []domain.Choice{{Text: "go", Target: "a"}}},
			},
			contains: []string{"start((\"start\"))"},
		},
		{
			name: "Linear Scene Uses Plain Edge",
			nodes: []domain.Node{
				{ID: "a", Choices: []domain.Choice{{Text: "Continue", Target: "b"}}},
			},
			contains: []string{"a(\"a\")", "a --> b"},
			excludes: []string{"Continue"},
		},
		{
			name: "Decision Edges Are Labelled",
			nodes: []domain.Node{
				{ID: "gate", Title: "The \"Gate\"", Choices: []domain.Choice{
					{Text: "Open it", Target: "hall"},
					{Text: "Run", Target: "road"},
				}},
			},
			contains: []string{
				"gate[\"gate <br/> The 'Gate'\"]",
				"gate -- \"Open it\" --> hall",
				"gate -- \"Run\" --> road",
			},
		},
		{
			name: "Endings",
			nodes: []domain.Node{
				{ID: "won", Ending: true, EndingType: domain.EndingWin},
				{ID: "lost", Ending: true, EndingType: domain.EndingLose},
			},
			contains: []string{
				"won{{\"won\"}}",
				"class won win;",
				"class lost lose;",
			},
		},
		{
			name: "ID Sanitization",
			nodes: []domain.Node{
				{ID: "path/to/file.md"},
				{ID: "hyphen-ated"},
			},
			contains: []string{
				"path_to_file_md[\"path/to/file.md\"]",
				"hyphen_ated[\"hyphen-ated\"]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.nodes, "start", nil)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	nodes := []domain.Node{
		{ID: "start", Choices: []domain.Choice{{Text: "go", Target: "a"}}},
		{ID: "a", Ending: true},
	}
	overlay := &graph.GraphOverlay{
		VisitedNodes: []string{"start", "start", "a"},
		CurrentNode:  "a",
	}

	got := graph.GenerateMermaid(nodes, "start", overlay)

	assert.Equal(t, 1, strings.Count(got, "class start visited;"))
	assert.Contains(t, got, "class a visited;")
	assert.Contains(t, got, "class a current;")
	assert.Contains(t, got, "class a neutral;")
}
