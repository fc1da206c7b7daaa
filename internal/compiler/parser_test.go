package compiler_test

import (
	"testing"

	"github.com/aretw0/quill/internal/compiler"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := compiler.NewParser()

	t.Run("Full Scene", func(t *testing.T) {
		node, err := p.Parse([]byte(`{
			"id": "hall",
			"title": "The Hall",
			"text": "A long corridor.",
			"image_seed": "dim corridor",
			"choices": [{"text": "Go on", "target": "door"}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, "hall", node.ID)
		assert.Equal(t, "The Hall", node.Title)
		assert.Equal(t, "dim corridor", node.ImageSeed)
		require.Len(t, node.Choices, 1)
		assert.Equal(t, "door", node.Choices[0].Target)
		assert.True(t, node.IsLinear())
	})

	t.Run("Ending Defaults To Neutral", func(t *testing.T) {
		node, err := p.Parse([]byte(`{"id":"end","text":"Fin","ending":true}`))
		require.NoError(t, err)
		assert.Equal(t, domain.EndingNeutral, node.EndingType)
	})

	t.Run("Unknown Ending Type", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"id":"end","ending":true,"ending_type":"draw"}`))
		assert.Error(t, err)
	})

	t.Run("Missing ID", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"text":"orphan"}`))
		assert.EqualError(t, err, "node missing ID")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := p.Parse([]byte(`{`))
		assert.Error(t, err)
	})
}
