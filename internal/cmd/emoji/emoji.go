// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators, alerts, and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: completed migrations, passing validation, confirmed matches.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed operations, missing API keys, validation errors.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: skipped records, unmatched persons, partial results.
	Warning = "!"

	// Optional represents optional or skipped items.
	// Used for: records without notes, blank fields.
	Optional = "-"

	// Unknown represents unknown or indeterminate states.
	// Used for: records the matcher could not resolve.
	Unknown = "?"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"
)
