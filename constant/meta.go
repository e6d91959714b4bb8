// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Kollel is the canonical application identifier used for filesystem paths and CLI branding.
	Kollel = "kollel"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// DefaultAPIURL is the backend base URL used when neither the config file nor the environment provide one.
	DefaultAPIURL = "https://kollelsys.com"

	// UserAgent identifies the CLI to the backend.
	UserAgent = Kollel + "/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
