// Package logging decouples the application from the logging framework.
// Components receive a Logger through their constructors; production code
// uses the logrus-backed adapter and tests use MockLogger.
package logging

// Logger is the structured logger used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached
	WithError(err error) Logger

	// WithField returns a logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted message and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
