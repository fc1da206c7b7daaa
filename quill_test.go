package quill_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/internal/testutils"
	"github.com/aretw0/quill/pkg/adapters/bundle"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithLoader(t *testing.T) {
	b := dsl.New()
	b.Add("start").Text("Begin").Choice("Win", "end").Choice("Also win", "end")
	b.Add("end").Text("Done").Ending(domain.EndingWin, "")

	engine, err := quill.New("", quill.WithLoader(b.MustBuild()))
	require.NoError(t, err)
	assert.Equal(t, "start", engine.Root())

	nodes, err := engine.Inspect()
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	session := engine.NewSession()
	defer session.Close()

	require.NoError(t, session.StartGame(context.Background()))
	require.NoError(t, session.Choose(context.Background(), 1))
	assert.Equal(t, domain.StatusEnded, session.Status())
	assert.True(t, session.View().Won)
}

func TestNew_LoamDirectory(t *testing.T) {
	dir, repo := testutils.SetupTestRepo(t)
	testutils.SeedScenes(t, repo, map[string]string{
		"start.md": "---\ntitle: Door\nto: hall\n---\nA door creaks.",
		"hall.md":  "---\nchoices:\n  - text: Run\n    to: out\n  - text: Hide\n    to: out\n---\nFootsteps.",
		"out.md":   "---\nending: true\nending_type: neutral\n---\nOutside.",
	})

	engine, err := quill.New(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), engine.Name)

	session := engine.NewSession()
	defer session.Close()

	require.NoError(t, session.StartGame(context.Background()))
	v := session.View()
	assert.Equal(t, "A door creaks.", v.Text)
	assert.Equal(t, 2, v.PageCount)
}

func TestNew_Bundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tale.yaml")
	doc := `
title: Tale
root: intro
scenes:
  - id: intro
    text: Once upon a time.
    choices:
      - text: Listen
        to: end
      - text: Sleep
        to: end
  - id: end
    text: The end.
    ending: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	engine, err := quill.New(path)
	require.NoError(t, err)
	assert.Equal(t, "Tale", engine.Name)
	assert.Equal(t, "intro", engine.Root())
	_, isBundle := engine.Loader().(*bundle.Loader)
	assert.True(t, isBundle)

	t.Run("Explicit Root Wins", func(t *testing.T) {
		engine, err := quill.New(path, quill.WithRootNode("end"))
		require.NoError(t, err)
		assert.Equal(t, "end", engine.Root())
	})
}

func TestNew_Errors(t *testing.T) {
	t.Run("Empty Path", func(t *testing.T) {
		_, err := quill.New("")
		assert.Error(t, err)
	})

	t.Run("Missing Path", func(t *testing.T) {
		_, err := quill.New(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("Unsupported File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "story.txt")
		require.NoError(t, os.WriteFile(path, []byte("hi"), 0644))
		_, err := quill.New(path)
		assert.ErrorContains(t, err, "unsupported story file")
	})
}

func TestSessions_AreIndependent(t *testing.T) {
	b := dsl.New()
	b.Add("start").Choice("A", "a").Choice("B", "b")
	b.Add("a").Ending(domain.EndingWin, "")
	b.Add("b").Ending(domain.EndingLose, "")

	engine, err := quill.New("", quill.WithLoader(b.MustBuild()))
	require.NoError(t, err)

	s1, s2 := engine.NewSession(), engine.NewSession()
	defer s1.Close()
	defer s2.Close()
	assert.NotEqual(t, s1.ID(), s2.ID())

	ctx := context.Background()
	require.NoError(t, s1.StartGame(ctx))
	require.NoError(t, s2.StartGame(ctx))
	require.NoError(t, s1.Choose(ctx, 0))
	require.NoError(t, s2.Choose(ctx, 1))

	assert.True(t, s1.View().Won)
	assert.False(t, s2.View().Won)
}

func TestEngine_ImagesWithoutProvider(t *testing.T) {
	b := dsl.New()
	b.Add("start").Ending(domain.EndingNeutral, "")

	engine, err := quill.New("", quill.WithLoader(b.MustBuild()), quill.WithImageGeneration(true))
	require.NoError(t, err)

	session := engine.NewSession()
	defer session.Close()
	assert.Equal(t, domain.StatusError, session.Status())
}
