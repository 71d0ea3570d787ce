// Package logging provides a pluggable structured logging abstraction.
// Packages obtain a logger through GetPackageLogger and log through the
// fluent Event interface; the concrete backend (zerolog, standard log,
// no-op or a capturing sink in tests) is selected by the application via
// SetGlobalAdapter.
package logging

import (
	"context"
)

// Level represents log levels
type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
	PanicLevel
	DisabledLevel
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case PanicLevel:
		return "panic"
	case DisabledLevel:
		return "disabled"
	default:
		return "unknown"
	}
}

// Event represents a single log event being built up before it is emitted
// with Msg or Msgf
type Event interface {
	Fields(fields ...Field) Event
	Field(key string, value interface{}) Event
	Err(err error) Event
	Msg(msg string)
	Msgf(format string, v ...interface{})
}

// Adapter defines the interface for internal logging backends
type Adapter interface {
	// Level control
	SetLevel(level Level) Adapter
	GetLevel() Level

	// Event constructors per severity
	Trace() Event
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event
	Fatal() Event
	Panic() Event

	Printf(format string, v ...interface{})

	// Context-aware logging
	WithContext(ctx context.Context) Adapter
	WithFields(fields ...Field) Adapter

	// Package-specific logger
	WithPackage(pkg string) Adapter
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F is a helper function to create fields
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
