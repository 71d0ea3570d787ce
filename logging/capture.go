package logging

import (
	"context"
	"fmt"
	"sync"
)

// Entry is a single log event recorded by the CaptureAdapter
type Entry struct {
	Level   Level
	Message string
	Fields  []Field
	Err     error
}

// captureStore holds the recorded entries shared by all derived views
type captureStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (s *captureStore) record(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// CaptureAdapter records every event in memory. It is intended for tests
// that need to assert on the events a package emits. Derived adapters
// returned by WithFields and WithPackage record into the same store.
type CaptureAdapter struct {
	store  *captureStore
	level  Level
	fields []Field
}

// NewCaptureAdapter creates a capturing adapter recording all levels
func NewCaptureAdapter() *CaptureAdapter {
	return &CaptureAdapter{
		store: &captureStore{},
		level: TraceLevel,
	}
}

// Entries returns a copy of all recorded entries
func (c *CaptureAdapter) Entries() []Entry {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	entries := make([]Entry, len(c.store.entries))
	copy(entries, c.store.entries)
	return entries
}

// EntriesAt returns all recorded entries with the given level
func (c *CaptureAdapter) EntriesAt(level Level) []Entry {
	var matched []Entry
	for _, entry := range c.Entries() {
		if entry.Level == level {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Reset discards all recorded entries
func (c *CaptureAdapter) Reset() {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.entries = nil
}

// captureEvent builds an Entry and hands it to the store on Msg
type captureEvent struct {
	store *captureStore
	entry Entry
}

func (e *captureEvent) Fields(fields ...Field) Event {
	e.entry.Fields = append(e.entry.Fields, fields...)
	return e
}

func (e *captureEvent) Field(key string, value interface{}) Event {
	e.entry.Fields = append(e.entry.Fields, Field{Key: key, Value: value})
	return e
}

func (e *captureEvent) Err(err error) Event {
	e.entry.Err = err
	return e
}

func (e *captureEvent) Msg(msg string) {
	e.entry.Message = msg
	e.store.record(e.entry)
}

func (e *captureEvent) Msgf(format string, v ...interface{}) {
	e.Msg(fmt.Sprintf(format, v...))
}

// SetLevel sets the log level
func (c *CaptureAdapter) SetLevel(level Level) Adapter {
	c.level = level
	return c
}

// GetLevel returns the current log level
func (c *CaptureAdapter) GetLevel() Level {
	return c.level
}

func (c *CaptureAdapter) event(level Level) Event {
	return &captureEvent{
		store: c.store,
		entry: Entry{Level: level, Fields: append([]Field{}, c.fields...)},
	}
}

// Trace returns a trace level event
func (c *CaptureAdapter) Trace() Event { return c.event(TraceLevel) }

// Debug returns a debug level event
func (c *CaptureAdapter) Debug() Event { return c.event(DebugLevel) }

// Info returns an info level event
func (c *CaptureAdapter) Info() Event { return c.event(InfoLevel) }

// Warn returns a warning level event
func (c *CaptureAdapter) Warn() Event { return c.event(WarnLevel) }

// Error returns an error level event
func (c *CaptureAdapter) Error() Event { return c.event(ErrorLevel) }

// Fatal returns a fatal level event
func (c *CaptureAdapter) Fatal() Event { return c.event(FatalLevel) }

// Panic returns a panic level event
func (c *CaptureAdapter) Panic() Event { return c.event(PanicLevel) }

// Printf records a formatted message at info level
func (c *CaptureAdapter) Printf(format string, v ...interface{}) {
	c.store.record(Entry{Level: InfoLevel, Message: fmt.Sprintf(format, v...)})
}

// WithContext returns the same adapter
func (c *CaptureAdapter) WithContext(ctx context.Context) Adapter {
	return c
}

// WithFields returns a derived adapter recording into the same store
func (c *CaptureAdapter) WithFields(fields ...Field) Adapter {
	combined := make([]Field, 0, len(c.fields)+len(fields))
	combined = append(combined, c.fields...)
	combined = append(combined, fields...)
	return &CaptureAdapter{
		store:  c.store,
		level:  c.level,
		fields: combined,
	}
}

// WithPackage returns a derived adapter with a package field on every entry
func (c *CaptureAdapter) WithPackage(pkg string) Adapter {
	return c.WithFields(Field{Key: "package", Value: pkg})
}
