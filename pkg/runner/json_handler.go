package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
)

// JSONHandler implements IOHandler over JSON lines.
// Each frame is written as one object; each input line is a command object
// ({"command": "choose", "index": 0}), a JSON string, or a bare command.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// systemMessage is the envelope for meta-messages.
type systemMessage struct {
	System string `json:"system"`
}

// jsonCommand is the structured form of an input line.
// Index is zero-based for both choices and timeline positions.
type jsonCommand struct {
	Command string `json:"command"`
	Index   *int   `json:"index,omitempty"`
	Target  string `json:"target,omitempty"`
}

// line converts the command into the text form ParseCommand understands.
func (c jsonCommand) line() string {
	switch CommandKind(c.Command) {
	case CmdChoose:
		if c.Index == nil {
			return "choose"
		}
		return strconv.Itoa(*c.Index + 1)
	case CmdRewind:
		if c.Target != "" {
			return "r " + c.Target
		}
		if c.Index != nil {
			return "r #" + strconv.Itoa(*c.Index+1)
		}
		return "r"
	case CmdPrevious:
		return "p"
	}
	return c.Command
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, frame Frame) error {
	return h.Encoder.Encode(frame)
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	var cmd jsonCommand
	switch {
	case json.Unmarshal([]byte(text), &val) == nil:
		text = val
	case json.Unmarshal([]byte(text), &cmd) == nil && cmd.Command != "":
		text = cmd.line()
	}
	return SanitizeInput(text)
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(systemMessage{System: msg})
}
