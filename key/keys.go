// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Backend API - these keys control how the request helper reaches the Kollel backend.
const (
	APIURL          = "api.url"
	APIHeaderPolicy = "api.header_policy"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
)
