package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoices(t *testing.T) {
	got, err := parseChoices(" 1, 2,1 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, got)

	got, err = parseChoices("")
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"0", "a", "1,,2"} {
		_, err := parseChoices(bad)
		assert.Error(t, err, bad)
	}
}
