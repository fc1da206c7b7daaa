package runtime_test

import (
	"testing"

	"github.com/aretw0/quill/internal/runtime"
	"github.com/stretchr/testify/assert"
)

func TestHistory_RecordChoice(t *testing.T) {
	t.Run("Deduplicates By Membership", func(t *testing.T) {
		h := runtime.NewHistory(nop)
		h.RecordChoice("a")
		h.RecordChoice("b")
		h.RecordChoice("a")
		assert.Equal(t, []string{"a", "b"}, h.Gameplay())
		assert.Equal(t, []string{"a", "b"}, h.MaxAchieved())
	})

	t.Run("Shorter Path Does Not Overwrite", func(t *testing.T) {
		h := runtime.NewHistory(nop)
		h.RecordChoice("a")
		h.RecordChoice("b")
		h.RecordChoice("c")
		h.RewindTo("b", "start")
		assert.Equal(t, []string{"a"}, h.Gameplay())

		h.RecordChoice("x")
		assert.Equal(t, []string{"a", "x"}, h.Gameplay())
		assert.Equal(t, []string{"a", "b", "c"}, h.MaxAchieved())
	})

	t.Run("Equal Length Different Path Overwrites", func(t *testing.T) {
		h := runtime.NewHistory(nop)
		h.RecordChoice("a")
		h.RecordChoice("b")
		h.RewindTo("b", "start")
		h.RecordChoice("z")
		assert.Equal(t, []string{"a", "z"}, h.MaxAchieved())
	})

	t.Run("Returns Copies", func(t *testing.T) {
		h := runtime.NewHistory(nop)
		h.RecordChoice("a")
		got := h.Gameplay()
		got[0] = "mutated"
		assert.Equal(t, []string{"a"}, h.Gameplay())
	})
}

func TestHistory_RewindTo(t *testing.T) {
	seed := func() *runtime.History {
		h := runtime.NewHistory(nop)
		for _, id := range []string{"a", "b", "c", "d"} {
			h.RecordChoice(id)
		}
		return h
	}

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"Root Empties Path", "start", nil},
		{"First Entry", "a", []string{}},
		{"Middle Entry", "c", []string{"a", "b"}},
		{"Unknown Target Empties Path", "ghost", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := seed()
			h.RewindTo(tt.target, "start")
			if len(tt.want) == 0 {
				assert.Empty(t, h.Gameplay())
			} else {
				assert.Equal(t, tt.want, h.Gameplay())
			}
			assert.Equal(t, []string{"a", "b", "c", "d"}, h.MaxAchieved(), "max-achieved is never truncated")
		})
	}
}
