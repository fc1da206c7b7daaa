package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/aretw0/quill/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Story is the decoded form of a bundle file.
type Story struct {
	Title  string  `mapstructure:"title"`
	Root   string  `mapstructure:"root"`
	Scenes []Scene `mapstructure:"scenes"`
}

// Scene is one entry of the "scenes" list.
type Scene struct {
	ID         string   `mapstructure:"id"`
	Title      string   `mapstructure:"title"`
	Text       string   `mapstructure:"text"`
	Image      string   `mapstructure:"image"`
	ImageSeed  string   `mapstructure:"image_seed"`
	To         string   `mapstructure:"to"`
	Choices    []Choice `mapstructure:"choices"`
	Ending     bool     `mapstructure:"ending"`
	EndingType string   `mapstructure:"ending_type"`
	Message    string   `mapstructure:"message"`
}

// Choice is one entry of a scene's "choices" list. "to" and "target" are synonyms.
type Choice struct {
	Text   string `mapstructure:"text"`
	To     string `mapstructure:"to"`
	Target string `mapstructure:"target"`
}

// Loader implements ports.GraphLoader over a single story file.
type Loader struct {
	title string
	root  string
	nodes map[string][]byte
}

// Load reads and validates a story bundle from a YAML or JSON file.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story bundle: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse validates and indexes a story bundle. JSON input is accepted since it is valid YAML.
func Parse(data []byte) (*Loader, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode story bundle: %w", err)
	}

	schema, err := compileStorySchema()
	if err != nil {
		return nil, err
	}
	if err := validate(schema, raw); err != nil {
		return nil, err
	}

	var story Story
	if err := mapstructure.Decode(raw, &story); err != nil {
		return nil, fmt.Errorf("failed to decode scenes: %w", err)
	}

	l := &Loader{
		title: story.Title,
		root:  story.Root,
		nodes: make(map[string][]byte, len(story.Scenes)),
	}

	for _, s := range story.Scenes {
		if _, dup := l.nodes[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scene id %q", s.ID)
		}
		bytes, err := json.Marshal(s.toNode())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal scene %s: %w", s.ID, err)
		}
		l.nodes[s.ID] = bytes
	}

	return l, nil
}

func (s Scene) toNode() domain.Node {
	seed := s.Image
	if seed == "" {
		seed = s.ImageSeed
	}

	node := domain.Node{
		ID:         s.ID,
		Title:      s.Title,
		Text:       s.Text,
		ImageSeed:  seed,
		Ending:     s.Ending,
		EndingType: domain.EndingType(s.EndingType),
		Message:    s.Message,
	}
	for _, c := range s.Choices {
		target := c.To
		if target == "" {
			target = c.Target
		}
		node.Choices = append(node.Choices, domain.Choice{Text: c.Text, Target: target})
	}
	if s.To != "" {
		node.Choices = append(node.Choices, domain.Choice{Target: s.To})
	}
	return node
}

// Title returns the story title declared by the bundle, if any.
func (l *Loader) Title() string {
	return l.title
}

// Root returns the root scene declared by the bundle, or "" to use the engine default.
func (l *Loader) Root() string {
	return l.root
}

// GetNode retrieves the raw definition of a scene by ID.
func (l *Loader) GetNode(id string) ([]byte, error) {
	content, ok := l.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return content, nil
}

// ListNodes returns all scene IDs in sorted order.
func (l *Loader) ListNodes() ([]string, error) {
	ids := make([]string, 0, len(l.nodes))
	for id := range l.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
