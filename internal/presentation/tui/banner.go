package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the fundflow banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Green to teal, money colors
	lines := []struct {
		text  string
		color string
	}{
		{"  __                 _  __ _", "#34d399"},
		{" / _|_   _ _ __   __| |/ _| | _____      __", "#10b981"},
		{"| |_| | | | '_ \\ / _` | |_| |/ _ \\ \\ /\\ / /", "#14b8a6"},
		{"|  _| |_| | | | | (_| |  _| | (_) \\ V  V /", "#0d9488"},
		{"|_|  \\__,_|_| |_|\\__,_|_| |_|\\___/ \\_/\\_/", "#0f766e"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
