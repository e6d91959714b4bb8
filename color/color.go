// Package color maps names to terminal colors.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	Cyan     = New("6")
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
	Gray     = New("#808080")
)

// Indigo is the brand color of the favicon and primary buttons.
var Indigo = New("#4f39f6")

// semantic maps the button color vocabulary to terminal colors.
var semantic = map[string]lipgloss.Color{
	"primary":   Indigo,
	"secondary": Purple,
	"success":   Green,
	"info":      Blue,
	"warning":   Yellow,
	"error":     Red,
	"neutral":   Gray,
}

// Semantic returns the terminal color for a button color name, Gray for unknown names.
func Semantic(name string) lipgloss.Color {
	if c, ok := semantic[name]; ok {
		return c
	}
	return Gray
}
