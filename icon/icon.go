// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/kollel-app/kollel/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants lists the supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Arrow
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Fail:    {emoji: "👹", nerd: "", plain: "✗", squares: "🟥"},
	Warn:    {emoji: "⚠️", nerd: "", plain: "!", squares: "🟨"},
	Arrow:   {emoji: "👉", nerd: "", plain: "→", squares: "▶"},
	Link:    {emoji: "🔗", nerd: "", plain: "~", squares: "🟦"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant. Unknown icons render empty.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
