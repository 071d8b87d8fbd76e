package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the splitcalc banner to w, colored when w is a terminal.
func PrintBanner(w io.Writer, version string) {
	o := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{`           _ _ _            _`, "#34d399"},
		{` ___ _ __ | (_) |_ ___ __ _| | ___`, "#2dd4bf"},
		{`/ __| '_ \| | | __/ __/ _' | |/ __|`, "#22d3ee"},
		{`\__ \ |_) | | | || (_| (_| | | (__`, "#38bdf8"},
		{`|___/ .__/|_|_|\__\___\__,_|_|\___|`, "#60a5fa"},
		{`    |_|`, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, o.String(l.text).Foreground(o.Color(l.color)))
	}
	fmt.Fprintln(w, o.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
