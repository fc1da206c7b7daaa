package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Quill ASCII banner and version line to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   ___        _ _ _ ", "#fbbf24"},
		{"  / _ \\ _   _(_) | |", "#f59e0b"},
		{" | | | | | | | | | |", "#d97706"},
		{" | |_| | |_| | | | |", "#b45309"},
		{"  \\__\\_\\\\__,_|_|_|_|", "#92400e"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}

// EndingBanner styles the closing line of a finished story.
func EndingBanner(won bool, message string) string {
	p := termenv.ColorProfile()
	if won {
		return termenv.String("*** YOU WIN *** " + message).Bold().Foreground(p.Color("#22c55e")).String()
	}
	return termenv.String("*** THE END *** " + message).Bold().Foreground(p.Color("#ef4444")).String()
}
