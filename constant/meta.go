// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Contar is the canonical application identifier used for filesystem paths and CLI branding.
	Contar = "contar"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// APIBase is the origin of the cont.ar catalog API.
	APIBase = "https://api.cont.ar/api/v2/"

	// SiteBase is the public site origin, used to derive Referer headers for resource fetches.
	SiteBase = "https://www.cont.ar"

	// UserAgent is the default HTTP User-Agent string used for network requests to the catalog API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, populated through ldflags at release time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
