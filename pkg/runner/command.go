package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandKind enumerates what a line of input asks the runner to do.
type CommandKind string

const (
	CmdNext     CommandKind = "next"
	CmdPrevious CommandKind = "previous"
	CmdChoose   CommandKind = "choose"
	CmdRewind   CommandKind = "rewind"
	CmdTimeline CommandKind = "timeline"
	CmdStart    CommandKind = "start"
	CmdReset    CommandKind = "reset"
	CmdMenu     CommandKind = "menu"
	CmdHelp     CommandKind = "help"
	CmdQuit     CommandKind = "quit"
)

// Command is a parsed line of input.
type Command struct {
	Kind CommandKind

	// Index is the zero-based choice index for CmdChoose, or the
	// zero-based timeline position for CmdRewind when Target is empty.
	Index int

	// Target is a scene ID for CmdRewind.
	Target string
}

var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand maps a line of input to a command. Choices are numbered from 1.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{Kind: CmdNext}, nil
	}

	head := strings.ToLower(fields[0])
	if n, err := strconv.Atoi(head); err == nil {
		if n < 1 {
			return Command{}, fmt.Errorf("choices are numbered from 1, got %d", n)
		}
		return Command{Kind: CmdChoose, Index: n - 1}, nil
	}

	switch head {
	case "n", "next":
		return Command{Kind: CmdNext}, nil
	case "p", "prev", "back":
		return Command{Kind: CmdPrevious}, nil
	case "t", "timeline":
		return Command{Kind: CmdTimeline}, nil
	case "s", "start", "play":
		return Command{Kind: CmdStart}, nil
	case "reset":
		return Command{Kind: CmdReset}, nil
	case "m", "menu":
		return Command{Kind: CmdMenu}, nil
	case "h", "?", "help":
		return Command{Kind: CmdHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	case "r", "rewind":
		return parseRewind(fields[1:])
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}

func parseRewind(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, errors.New("usage: r <scene-id> or r #<timeline-position>")
	}
	arg := args[0]
	if pos, ok := strings.CutPrefix(arg, "#"); ok {
		n, err := strconv.Atoi(pos)
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("invalid timeline position %q", arg)
		}
		return Command{Kind: CmdRewind, Index: n - 1}, nil
	}
	return Command{Kind: CmdRewind, Target: arg}, nil
}

const helpText = `<n> choose | n/enter next page | p previous page | r <id|#n> rewind | t timeline | s start | reset | m menu | q quit`
