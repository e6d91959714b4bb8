// Package style composes lipgloss renderers for CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kollel-app/kollel/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Tag renders s as a padded block with the given colors.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

// Title renders a section heading.
var Title = Tag(color.New("230"), color.Indigo)

// Key renders a key in key/value listings.
var Key = func(s string) string { return New().Bold(true).Foreground(color.Purple).Render(s) }
