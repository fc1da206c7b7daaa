package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/quill/pkg/domain"
)

// EndingFormatter styles the closing line of a finished story.
type EndingFormatter func(won bool, message string) string

// TextHandler implements interactive terminal play.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Ending   EndingFormatter

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerEnding configures how endings are announced.
func WithTextHandlerEnding(f EndingFormatter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Ending = f
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// initPump moves blocking reads off the caller so Input can honour ctx.
func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, frame Frame) error {
	if frame.Timeline != nil {
		h.writeTimeline(frame.Timeline)
		return nil
	}

	v := frame.View
	switch v.Status {
	case domain.StatusMenu:
		fmt.Fprintln(h.Writer, "Press enter or 's' to begin. 'h' for help.")
		return nil
	case domain.StatusError:
		fmt.Fprintf(h.Writer, "Error: %s\n", v.Error)
		fmt.Fprintln(h.Writer, "'m' returns to the menu.")
		return nil
	case domain.StatusLoading:
		fmt.Fprintln(h.Writer, "Loading...")
		return nil
	}

	fmt.Fprintln(h.Writer)
	fmt.Fprintln(h.Writer, strings.TrimSpace(h.render(v.Text)))

	switch {
	case v.Loading:
		fmt.Fprintln(h.Writer, "[illustrating...]")
	case v.ImageURL != nil && strings.HasPrefix(*v.ImageURL, "data:"):
		fmt.Fprintln(h.Writer, "[illustration ready]")
	case v.ImageURL != nil:
		fmt.Fprintf(h.Writer, "[illustration: %s]\n", *v.ImageURL)
	}

	if v.PageCount > 1 {
		fmt.Fprintf(h.Writer, "(page %d/%d)\n", v.PageIndex+1, v.PageCount)
	}

	if v.Ending {
		fmt.Fprintln(h.Writer, h.ending(v.Won, v.Message))
		fmt.Fprintln(h.Writer, "'s' plays again, 't' shows the timeline.")
		return nil
	}
	for i, c := range v.Choices {
		fmt.Fprintf(h.Writer, "  %d) %s\n", i+1, c.Text)
	}
	return nil
}

func (h *TextHandler) writeTimeline(entries []domain.TimelineEntry) {
	fmt.Fprintln(h.Writer, "Timeline:")
	for _, e := range entries {
		marker := " "
		if e.Current {
			marker = "*"
		}
		fmt.Fprintf(h.Writer, " %s #%d %s (%s)\n", marker, e.Index+1, e.Title, e.NodeID)
	}
}

func (h *TextHandler) render(text string) string {
	if h.Renderer == nil {
		return text
	}
	rendered, err := h.Renderer(text)
	if err != nil {
		return text
	}
	return rendered
}

func (h *TextHandler) ending(won bool, message string) string {
	if h.Ending != nil {
		return h.Ending(won, message)
	}
	if won {
		return "*** YOU WIN *** " + message
	}
	return "*** THE END *** " + message
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return nil
}
