package runtime_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/aretw0/quill/internal/runtime"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/dsl"
	"github.com/aretw0/quill/pkg/ports"
	"github.com/stretchr/testify/require"
)

var nop = slog.New(slog.NewTextHandler(io.Discard, nil))

// storyGraph builds:
//
//	start -> a -> b -> c { d | e }
//	d -> x -> y -> d2 { win | lose }
//	e: lose ending
func storyGraph(t *testing.T) *runtime.Graph {
	t.Helper()
	return runtime.NewGraph(storyLoader(t))
}

func storyLoader(t *testing.T) ports.GraphLoader {
	t.Helper()

	b := dsl.New()
	b.Add("start").Title("Wake").Text("You wake.").Image("attic").Go("a")
	b.Add("a").Text("Stairs.").Image("stairs").Go("b")
	b.Add("b").Text("Hall.").Go("c")
	b.Add("c").Title("Crossroads").Text("Two doors.").Image("doors").
		Choice("Left", "d").
		Choice("Right", "e")
	b.Add("d").Text("Garden.").Image("garden").Go("x")
	b.Add("x").Text("Path.").Go("y")
	b.Add("y").Text("Gate.").Go("d2")
	b.Add("d2").Title("The Gate").Text("Open it?").
		Choice("Open", "win").
		Choice("Wait", "lose")
	b.Add("e").Text("A wall.").Ending(domain.EndingLose, "Dead end.")
	b.Add("win").Text("Freedom.").Image("sunrise").Ending(domain.EndingWin, "You escaped.")
	b.Add("lose").Text("Night falls.").Ending(domain.EndingLose, "")

	loader, err := b.Build()
	require.NoError(t, err)
	return loader
}

// gatedLoader blocks the first lookup of one scene until released.
type gatedLoader struct {
	ports.GraphLoader
	id      string
	entered chan struct{}
	release chan struct{}
}

func newGatedLoader(inner ports.GraphLoader, id string) *gatedLoader {
	return &gatedLoader{
		GraphLoader: inner,
		id:          id,
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (l *gatedLoader) GetNode(id string) ([]byte, error) {
	if id == l.id {
		l.entered <- struct{}{}
		<-l.release
	}
	return l.GraphLoader.GetNode(id)
}

func pageIDs(pages []domain.Page) []string {
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.NodeID
	}
	return ids
}
