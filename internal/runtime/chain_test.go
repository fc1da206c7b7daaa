package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/quill/internal/runtime"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveForward(t *testing.T) {
	g := storyGraph(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		start string
		pages []string
		final string
	}{
		{"Linear Chain Collapses", "start", []string{"start", "a", "b", "c"}, "c"},
		{"Branch Stops Immediately", "c", []string{"c"}, "c"},
		{"Ending Stops Immediately", "e", []string{"e"}, "e"},
		{"Mid Chain Start", "x", []string{"x", "y", "d2"}, "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := runtime.ResolveForward(ctx, g, tt.start, nop)
			require.NoError(t, err)
			assert.Equal(t, tt.pages, pageIDs(chain.Pages))
			assert.Equal(t, tt.final, chain.Final.ID)
			assert.Equal(t, 0, chain.Cursor)
		})
	}
}

func TestResolveForward_EdgeCases(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Target Stops Chain", func(t *testing.T) {
		b := dsl.New()
		b.Add("start").Go("a")
		b.Add("a").Go("")
		g := runtime.NewGraph(b.MustBuild())

		chain, err := runtime.ResolveForward(ctx, g, "start", nop)
		require.NoError(t, err)
		assert.Equal(t, []string{"start", "a"}, pageIDs(chain.Pages))
		assert.Equal(t, "a", chain.Final.ID)
	})

	t.Run("Linear Cycle Terminates", func(t *testing.T) {
		b := dsl.New()
		b.Add("start").Go("a")
		b.Add("a").Go("b")
		b.Add("b").Go("a")
		g := runtime.NewGraph(b.MustBuild())

		chain, err := runtime.ResolveForward(ctx, g, "start", nop)
		require.NoError(t, err)
		assert.Equal(t, []string{"start", "a", "b"}, pageIDs(chain.Pages))
	})

	t.Run("Missing Node Is Integrity Error", func(t *testing.T) {
		b := dsl.New()
		b.Add("start").Go("ghost")
		g := runtime.NewGraph(b.MustBuild())

		_, err := runtime.ResolveForward(ctx, g, "start", nop)
		var gie *domain.GraphIntegrityError
		require.True(t, errors.As(err, &gie))
		assert.Equal(t, "ghost", gie.NodeID)
		assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := runtime.ResolveForward(cctx, storyGraph(t), "start", nop)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
