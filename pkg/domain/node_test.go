package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/quill/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestNode_IsLinear(t *testing.T) {
	tests := []struct {
		name   string
		node   domain.Node
		linear bool
	}{
		{"Single Choice", domain.Node{ID: "a", Choices: []domain.Choice{{Target: "b"}}}, true},
		{"No Choices", domain.Node{ID: "a"}, false},
		{"Two Choices", domain.Node{ID: "a", Choices: []domain.Choice{{Target: "b"}, {Target: "c"}}}, false},
		{"Ending With Choice", domain.Node{ID: "a", Ending: true, Choices: []domain.Choice{{Target: "b"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.linear, tt.node.IsLinear())
			assert.Equal(t, !tt.linear, tt.node.IsStoppingPoint())
		})
	}
}

func TestNode_Won(t *testing.T) {
	assert.True(t, (&domain.Node{Ending: true, EndingType: domain.EndingWin}).Won())
	assert.False(t, (&domain.Node{Ending: true, EndingType: domain.EndingLose}).Won())
	assert.False(t, (&domain.Node{EndingType: domain.EndingWin}).Won())
}

func TestBrokenSequenceNode(t *testing.T) {
	n := domain.BrokenSequenceNode("cellar")
	assert.Equal(t, `Error: Story sequence broken. Node "cellar" is missing.`, n.Text)
	assert.True(t, n.Ending)
	assert.Equal(t, domain.EndingLose, n.EndingType)
	assert.Equal(t, "Fatal error.", n.Message)
}

func TestGraphIntegrityError_Unwrap(t *testing.T) {
	err := &domain.GraphIntegrityError{NodeID: "x", Cause: domain.ErrNodeNotFound}
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	assert.Contains(t, err.Error(), `"x"`)
}
