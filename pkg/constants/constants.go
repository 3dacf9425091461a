// Package constants provides shared constants used throughout the rollcall codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the live-system API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Pagination constants
const (
	// DefaultPageSize is the page size used when walking the live-system user list
	DefaultPageSize = 100

	// MaxPageSize is the maximum allowed page size for paginated requests
	MaxPageSize = 1000

	// ServerDefaultLimit is the page size the live system applies when none is requested
	ServerDefaultLimit = 20
)

// Matching constants
const (
	// DefaultMatchThreshold is the minimum confidence a candidate needs to be reported
	DefaultMatchThreshold = 0.8
)

// Path constants
const (
	// DefaultConfigName is the base name of the rollcall config file (without extension)
	DefaultConfigName = ".rollcall"

	// DefaultEnvPrefix is the prefix for rollcall environment variables
	DefaultEnvPrefix = "ROLLCALL"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)
