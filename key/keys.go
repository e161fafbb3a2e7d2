// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Authentication.
const (
	AuthEmail    = "auth.email"
	AuthPassword = "auth.password"
)

// Catalog API.
const (
	APIBase = "api.base"
)

// Networking.
const (
	NetTimeout = "net.timeout"
)

// Hierarchy resolution.
const (
	ResolverConcurrency = "resolver.concurrency"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Icons.
const (
	IconsVariant = "icons.variant"
)
