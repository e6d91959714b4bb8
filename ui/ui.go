// Package ui holds the application UI configuration consumed by the component rendering engine.
package ui

import (
	"github.com/invopop/jsonschema"
	"github.com/kollel-app/kollel/variant"
	"github.com/samber/lo"
)

func init() {
	lo.Must0(Button.Validate())
}

// Toaster configures the toast stack.
type Toaster struct {
	Position string `json:"position" jsonschema:"enum=top-left,enum=top-center,enum=top-right,enum=bottom-left,enum=bottom-center,enum=bottom-right"`
	Expand   bool   `json:"expand"`
	// Duration is in milliseconds.
	Duration int `json:"duration" jsonschema:"minimum=0"`
}

// Notifications configures where notifications are anchored.
type Notifications struct {
	Position string `json:"position"`
}

// AppConfig is the top-level `ui` object of the application config.
type AppConfig struct {
	Primary       string        `json:"primary"`
	Gray          string        `json:"gray"`
	Toaster       Toaster       `json:"toaster"`
	Notifications Notifications `json:"notifications"`
	Button        variant.Table `json:"button"`
}

// App is the application UI configuration.
var App = AppConfig{
	Primary: "blue",
	Gray:    "cool",
	Toaster: Toaster{
		Position: "bottom-right",
		Expand:   true,
		Duration: 2000,
	},
	Notifications: Notifications{
		// Show toasts at the top right of the screen
		Position: "top-0 bottom-[unset]",
	},
	Button: Button,
}

// Resolve returns the button classes for sel.
func (c AppConfig) Resolve(sel variant.Selection) map[variant.Slot]string {
	return c.Button.Resolve(sel)
}

// Schema returns the JSON Schema of AppConfig.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return r.Reflect(App)
}
