// Package severity maps HTTP status codes to coarse monitoring tiers.
//
// The tiers drive alerting and log levels: server-side failures are errors,
// client-side failures are warnings, everything else is informational.
package severity

// Level is the monitoring tier derived from an HTTP status code.
type Level string

const (
	// LevelError covers server errors (status >= 500).
	LevelError Level = "error"
	// LevelWarn covers client errors (400 <= status < 500).
	LevelWarn Level = "warn"
	// LevelInfo covers everything below 400.
	LevelInfo Level = "info"
)

// Classify returns the tier for a status code. Total over all integers.
func Classify(status int) Level {
	switch {
	case status >= 500:
		return LevelError
	case status >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// IsClientError reports whether status is in the 4xx range.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}

// IsServerError reports whether status is in the 5xx range.
func IsServerError(status int) bool {
	return status >= 500 && status < 600
}
