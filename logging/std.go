package logging

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// StandardAdapter implements Adapter using Go's standard log package
type StandardAdapter struct {
	logger *log.Logger
	level  Level
	fields []Field
}

// NewStandardAdapter creates a new standard log adapter with the default logger
func NewStandardAdapter() Adapter {
	return &StandardAdapter{
		logger: log.Default(),
		level:  InfoLevel,
	}
}

// NewStandardAdapterWithLogger creates a new standard log adapter with a custom logger
func NewStandardAdapterWithLogger(logger *log.Logger) Adapter {
	return &StandardAdapter{
		logger: logger,
		level:  InfoLevel,
	}
}

// StandardEvent collects fields until Msg emits a single formatted line
type StandardEvent struct {
	adapter *StandardAdapter
	level   Level
	fields  []Field
	err     error
}

// Fields adds structured fields to the event
func (e *StandardEvent) Fields(fields ...Field) Event {
	e.fields = append(e.fields, fields...)
	return e
}

// Field adds a single field to the event
func (e *StandardEvent) Field(key string, value interface{}) Event {
	e.fields = append(e.fields, Field{Key: key, Value: value})
	return e
}

// Err adds an error to the event
func (e *StandardEvent) Err(err error) Event {
	e.err = err
	return e
}

// Msg logs the message with all accumulated fields
func (e *StandardEvent) Msg(msg string) {
	if e.level < e.adapter.level {
		return
	}

	logMsg := e.formatMessage(msg)

	switch e.level {
	case FatalLevel:
		e.adapter.logger.Fatal(logMsg)
	case PanicLevel:
		e.adapter.logger.Panic(logMsg)
	default:
		e.adapter.logger.Print(logMsg)
	}
}

// Msgf logs the formatted message with all accumulated fields
func (e *StandardEvent) Msgf(format string, v ...interface{}) {
	e.Msg(fmt.Sprintf(format, v...))
}

// formatMessage formats the message with level, fields, and error
func (e *StandardEvent) formatMessage(msg string) string {
	parts := []string{fmt.Sprintf("[%s]", strings.ToUpper(e.level.String())), msg}

	for _, field := range e.adapter.fields {
		parts = append(parts, fmt.Sprintf("%s=%v", field.Key, field.Value))
	}
	for _, field := range e.fields {
		parts = append(parts, fmt.Sprintf("%s=%v", field.Key, field.Value))
	}

	if e.err != nil {
		parts = append(parts, fmt.Sprintf("error=%v", e.err))
	}

	return strings.Join(parts, " ")
}

// SetLevel sets the log level
func (s *StandardAdapter) SetLevel(level Level) Adapter {
	s.level = level
	return s
}

// GetLevel returns the current log level
func (s *StandardAdapter) GetLevel() Level {
	return s.level
}

// Trace returns a trace level event
func (s *StandardAdapter) Trace() Event {
	return &StandardEvent{adapter: s, level: TraceLevel}
}

// Debug returns a debug level event
func (s *StandardAdapter) Debug() Event {
	return &StandardEvent{adapter: s, level: DebugLevel}
}

// Info returns an info level event
func (s *StandardAdapter) Info() Event {
	return &StandardEvent{adapter: s, level: InfoLevel}
}

// Warn returns a warning level event
func (s *StandardAdapter) Warn() Event {
	return &StandardEvent{adapter: s, level: WarnLevel}
}

// Error returns an error level event
func (s *StandardAdapter) Error() Event {
	return &StandardEvent{adapter: s, level: ErrorLevel}
}

// Fatal returns a fatal level event
func (s *StandardAdapter) Fatal() Event {
	return &StandardEvent{adapter: s, level: FatalLevel}
}

// Panic returns a panic level event
func (s *StandardAdapter) Panic() Event {
	return &StandardEvent{adapter: s, level: PanicLevel}
}

// Printf prints a formatted message
func (s *StandardAdapter) Printf(format string, v ...interface{}) {
	s.logger.Printf(format, v...)
}

// WithContext returns the same adapter, the standard logger carries no context
func (s *StandardAdapter) WithContext(ctx context.Context) Adapter {
	return s
}

// WithFields returns a new adapter that prepends the fields to every event
func (s *StandardAdapter) WithFields(fields ...Field) Adapter {
	combined := make([]Field, 0, len(s.fields)+len(fields))
	combined = append(combined, s.fields...)
	combined = append(combined, fields...)
	return &StandardAdapter{
		logger: s.logger,
		level:  s.level,
		fields: combined,
	}
}

// WithPackage returns a new adapter with a package field on every event
func (s *StandardAdapter) WithPackage(pkg string) Adapter {
	return s.WithFields(Field{Key: "package", Value: pkg})
}
