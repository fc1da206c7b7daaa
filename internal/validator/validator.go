package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/quill/internal/compiler"
	"github.com/aretw0/quill/pkg/ports"
)

// Issue is a single problem found in a story graph.
type Issue struct {
	NodeID  string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.NodeID, i.Message)
}

// Report collects every issue found by Check.
type Report struct {
	Reachable []string
	Issues    []Issue
	Warnings  []Issue
}

// OK reports whether the graph has no blocking issues. Warnings do not count.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Err folds the blocking issues into a single error, or nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		lines[i] = issue.String()
	}
	return fmt.Errorf("found %d errors:\n- %s", len(r.Issues), strings.Join(lines, "\n- "))
}

// Check crawls the graph breadth-first from rootID.
// Missing or unparseable scenes and empty choice targets are errors.
// Scenes never reached from the root are warnings.
func Check(loader ports.GraphLoader, parser *compiler.Parser, rootID string) (*Report, error) {
	report := &Report{}

	if _, err := loader.GetNode(rootID); err != nil {
		return nil, fmt.Errorf("root node '%s' not found: %w", rootID, err)
	}

	visited := make(map[string]bool)
	queue := []string{rootID}

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		raw, err := loader.GetNode(currentID)
		if err != nil {
			report.Issues = append(report.Issues, Issue{NodeID: currentID, Message: "missing node or load error"})
			continue
		}
		node, err := parser.Parse(raw)
		if err != nil {
			report.Issues = append(report.Issues, Issue{NodeID: currentID, Message: err.Error()})
			continue
		}
		report.Reachable = append(report.Reachable, currentID)

		if !node.Ending && len(node.Choices) == 0 {
			report.Warnings = append(report.Warnings, Issue{NodeID: currentID, Message: "dead end: no choices and not an ending"})
		}

		for i, c := range node.Choices {
			if c.Target == "" {
				report.Issues = append(report.Issues, Issue{NodeID: currentID, Message: fmt.Sprintf("choice %d has no target", i+1)})
				continue
			}
			if !visited[c.Target] {
				queue = append(queue, c.Target)
			}
		}
	}

	ids, err := loader.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	for _, id := range ids {
		if !visited[id] {
			report.Warnings = append(report.Warnings, Issue{NodeID: id, Message: "unreachable from " + rootID})
		}
	}

	return report, nil
}

// ValidateGraph checks for broken links starting from rootID.
func ValidateGraph(loader ports.GraphLoader, parser *compiler.Parser, rootID string) error {
	report, err := Check(loader, parser, rootID)
	if err != nil {
		return err
	}
	return report.Err()
}
