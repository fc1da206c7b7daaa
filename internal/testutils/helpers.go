package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupTestRepo creates a temporary directory and initializes a Loam repository in it.
// It returns the absolute path to the temp dir and the initialized repository.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// SeedScenes saves Markdown scene documents (keyed by file name) into repo.
func SeedScenes(t *testing.T, repo core.Repository, scenes map[string]string) {
	t.Helper()

	ctx := context.Background()
	for name, content := range scenes {
		require.NoError(t, repo.Save(ctx, core.Document{ID: name, Content: content}), "Failed to seed %s", name)
	}
}
