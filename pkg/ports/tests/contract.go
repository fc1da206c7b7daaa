package tests

import (
	"errors"
	"testing"

	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GraphLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.GraphLoader.
// setupData maps each scene ID to the JSON the loader is expected to return for it.
func GraphLoaderContractTest(t *testing.T, loader ports.GraphLoader, setupData map[string][]byte) {
	t.Helper()

	t.Run("GetNode_Success", func(t *testing.T) {
		for id, expected := range setupData {
			content, err := loader.GetNode(id)
			require.NoError(t, err, "getting node %s", id)
			assert.JSONEq(t, string(expected), string(content), "content mismatch for %s", id)
		}
	})

	t.Run("GetNode_NotFound", func(t *testing.T) {
		_, err := loader.GetNode("non-existent-node")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNodeNotFound), "expected ErrNodeNotFound, got %v", err)
	})

	t.Run("ListNodes", func(t *testing.T) {
		nodes, err := loader.ListNodes()
		require.NoError(t, err)
		assert.Len(t, nodes, len(setupData))

		for id := range setupData {
			assert.Contains(t, nodes, id)
		}
	})
}
