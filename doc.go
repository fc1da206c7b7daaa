/*
Package quill is a playback engine for branching interactive fiction.

A story is a directed graph of scenes. Scenes with exactly one choice are read
through without stopping, so a single decision expands into a run of pages that
the player pages through before the next choice is offered. Quill keeps the
path the player is on, the furthest path they ever reached, and can rewind to
any decision point on it while rebuilding the pages that led there.

# Usage

Stories can live in a directory of Markdown scenes, in a single YAML/JSON
bundle, or in memory:

	engine, err := quill.New("./stories/housemaid.yaml")
	if err != nil {
		log.Fatal(err)
	}

	session := engine.NewSession()
	defer session.Close()

	if err := session.StartGame(ctx); err != nil {
		log.Fatal(err)
	}
	view := session.View()

# Illustrations

The first page of every sequence may carry an image. Without an image provider
a deterministic placeholder URL is used; with one (see pkg/adapters/imagen)
the request runs in the background and late responses for pages the player
already left are dropped.
*/
package quill
