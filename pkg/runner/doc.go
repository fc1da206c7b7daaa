/*
Package runner implements the interactive play loop for a Quill session.

It is the bridge between a session (the state machine) and the outside world:
it draws the current view, reads a command, and applies it. How views are drawn
and commands are read is delegated to an IOHandler.

# Key Components

  - Runner: the loop. Accepts any Player, which *quill.Session satisfies.
  - IOHandler: decouples presentation (text, JSON lines) from the loop.
  - TextHandler: interactive terminal play, with optional markdown rendering.
  - JSONHandler: one JSON view per line out, one command per line in.

# Commands

	<n>          take choice n
	n, enter     next page
	p            previous page
	r <id|#n>    rewind to a scene from the timeline
	t            show the timeline
	s            start a new game
	reset        restart the chapter from the root
	m            return to the menu
	q            quit

# Usage

	r := runner.New(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithAutoStart(true),
	)
	if err := r.Run(ctx, engine.NewSession()); err != nil {
		log.Fatal(err)
	}
*/
package runner
