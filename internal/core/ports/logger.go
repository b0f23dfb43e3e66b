package ports

// Logger defines the interface for structured application logging.
type Logger interface {
	// Info logs an informational message with optional key/value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error, unwrapping its cause chain where possible.
	Error(err error)
}
