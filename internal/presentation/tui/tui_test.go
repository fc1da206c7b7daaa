package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestEndingBanner(t *testing.T) {
	assert.Contains(t, EndingBanner(true, "Freedom."), "YOU WIN")
	assert.Contains(t, EndingBanner(false, "Caught."), "Caught.")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("the **door** creaks")
	require.NoError(t, err)
	assert.Contains(t, out, "door")
}
