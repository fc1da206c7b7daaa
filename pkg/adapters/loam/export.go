package loam

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/aretw0/quill/pkg/domain"
	"gopkg.in/yaml.v3"
)

// frontmatter mirrors SceneMetadata with the keys written on export.
type frontmatter struct {
	ID         string            `yaml:"id"`
	Title      string            `yaml:"title,omitempty"`
	Image      string            `yaml:"image,omitempty"`
	To         string            `yaml:"to,omitempty"`
	Choices    []frontmatterEdge `yaml:"choices,omitempty"`
	Ending     bool              `yaml:"ending,omitempty"`
	EndingType string            `yaml:"ending_type,omitempty"`
	Message    string            `yaml:"message,omitempty"`
}

type frontmatterEdge struct {
	Text string `yaml:"text"`
	To   string `yaml:"to"`
}

// Export saves every scene into repo as a Markdown document (<id>.md).
// A scene with a single unlabelled choice is written with the "to" shorthand.
func Export(ctx context.Context, repo core.Repository, nodes []domain.Node) error {
	for _, n := range nodes {
		doc, err := sceneDocument(n)
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, doc); err != nil {
			return fmt.Errorf("failed to save scene %s: %w", n.ID, err)
		}
	}
	return nil
}

// ExportDir initializes a plain (unversioned) Loam repository at dir and exports into it.
func ExportDir(ctx context.Context, dir string, nodes []domain.Node) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return err
	}
	repo, err := loam.Init(absPath, loam.WithVersioning(false))
	if err != nil {
		return fmt.Errorf("failed to initialize loam: %w", err)
	}
	return Export(ctx, repo, nodes)
}

func sceneDocument(n domain.Node) (core.Document, error) {
	fm := frontmatter{
		ID:      n.ID,
		Title:   n.Title,
		Image:   n.ImageSeed,
		Ending:  n.Ending,
		Message: n.Message,
	}
	if n.Ending {
		fm.EndingType = string(n.EndingType)
	}
	if len(n.Choices) == 1 && n.Choices[0].Text == "" {
		fm.To = n.Choices[0].Target
	} else {
		for _, c := range n.Choices {
			fm.Choices = append(fm.Choices, frontmatterEdge{Text: c.Text, To: c.Target})
		}
	}

	head, err := yaml.Marshal(fm)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to encode frontmatter for %s: %w", n.ID, err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(head)
	sb.WriteString("---\n")
	sb.WriteString(strings.TrimSpace(n.Text))
	sb.WriteString("\n")

	return core.Document{ID: n.ID + ".md", Content: sb.String()}, nil
}
