package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It detects a light or dark terminal background automatically.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// NewPlainRenderer renders markdown without colors, for pipes and tests.
func NewPlainRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(60),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
