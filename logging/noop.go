package logging

import "context"

// NoOpAdapter implements Adapter but discards every event.
// This is the default backend so that library packages stay silent until
// the application installs a real adapter.
type NoOpAdapter struct {
	level Level
}

// noOpEvent discards everything
type noOpEvent struct{}

func (e noOpEvent) Fields(_ ...Field) Event             { return e }
func (e noOpEvent) Field(_ string, _ interface{}) Event { return e }
func (e noOpEvent) Err(_ error) Event                   { return e }
func (e noOpEvent) Msg(_ string)                        {}
func (e noOpEvent) Msgf(_ string, _ ...interface{})     {}

// NewNoOpAdapter creates a new no-op adapter
func NewNoOpAdapter() Adapter {
	return &NoOpAdapter{level: DisabledLevel}
}

// SetLevel sets the log level
func (n *NoOpAdapter) SetLevel(level Level) Adapter {
	n.level = level
	return n
}

// GetLevel returns the current log level
func (n *NoOpAdapter) GetLevel() Level {
	return n.level
}

// Trace returns a discarded event
func (n *NoOpAdapter) Trace() Event { return noOpEvent{} }

// Debug returns a discarded event
func (n *NoOpAdapter) Debug() Event { return noOpEvent{} }

// Info returns a discarded event
func (n *NoOpAdapter) Info() Event { return noOpEvent{} }

// Warn returns a discarded event
func (n *NoOpAdapter) Warn() Event { return noOpEvent{} }

// Error returns a discarded event
func (n *NoOpAdapter) Error() Event { return noOpEvent{} }

// Fatal returns a discarded event
func (n *NoOpAdapter) Fatal() Event { return noOpEvent{} }

// Panic returns a discarded event
func (n *NoOpAdapter) Panic() Event { return noOpEvent{} }

func (n *NoOpAdapter) Printf(format string, v ...interface{}) {}

// WithContext returns the same no-op adapter
func (n *NoOpAdapter) WithContext(ctx context.Context) Adapter {
	return n
}

// WithFields returns the same no-op adapter
func (n *NoOpAdapter) WithFields(fields ...Field) Adapter {
	return n
}

// WithPackage returns the same no-op adapter
func (n *NoOpAdapter) WithPackage(pkg string) Adapter {
	return n
}
