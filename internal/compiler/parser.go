package compiler

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/quill/pkg/domain"
)

// Parser is responsible for converting raw bytes into a Node.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the JSON produced by a GraphLoader into a Node.
// Endings without an explicit type are treated as neutral.
func (p *Parser) Parse(data []byte) (*domain.Node, error) {
	var node domain.Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse node: %w", err)
	}
	if node.ID == "" {
		return nil, fmt.Errorf("node missing ID")
	}
	if node.Ending {
		if node.EndingType == "" {
			node.EndingType = domain.EndingNeutral
		}
		if !node.EndingType.Valid() {
			return nil, fmt.Errorf("node %s: unknown ending type %q", node.ID, node.EndingType)
		}
	}
	return &node, nil
}
