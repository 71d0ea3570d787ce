package log

import (
	"errors"
	"testing"

	"github.com/valentin-kaiser/hwident/logging"
)

func TestGlobalFacade(t *testing.T) {
	capture := logging.NewCaptureAdapter()
	logging.SetGlobalAdapter(capture)
	defer logging.SetGlobalAdapter(logging.NewNoOpAdapter())

	t.Run("basic logging functions", func(t *testing.T) {
		capture.Reset()
		Trace().Msg("trace message")
		Debug().Msg("debug message")
		Info().Msg("info message")
		Warn().Msg("warn message")
		Error().Msg("error message")

		if len(capture.Entries()) != 5 {
			t.Errorf("expected 5 entries, got %d", len(capture.Entries()))
		}
	})

	t.Run("error logging with fluent interface", func(t *testing.T) {
		capture.Reset()
		err := errors.New("test error")
		Info().Err(err).Msg("test")

		entries := capture.Entries()
		if len(entries) != 1 || !errors.Is(entries[0].Err, err) {
			t.Error("expected the error to be recorded on the entry")
		}
	})

	t.Run("field logging", func(t *testing.T) {
		capture.Reset()
		Info().Field("key", "value").Msg("message with field")
		Info().Fields(F("user", "john"), F("action", "login")).Msg("message with fields")

		entries := capture.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if len(entries[1].Fields) != 2 {
			t.Errorf("expected 2 fields, got %d", len(entries[1].Fields))
		}
	})

	t.Run("level management", func(t *testing.T) {
		originalLevel := GetLevel()

		SetLevel(logging.ErrorLevel)
		if GetLevel() != logging.ErrorLevel {
			t.Errorf("Expected level %v, got %v", logging.ErrorLevel, GetLevel())
		}

		SetLevel(originalLevel)
	})

	t.Run("printf logging", func(t *testing.T) {
		capture.Reset()
		Printf("formatted message: %s, number: %d", "test", 42)

		entries := capture.Entries()
		if len(entries) != 1 || entries[0].Message != "formatted message: test, number: 42" {
			t.Errorf("unexpected printf entry: %+v", entries)
		}
	})

	t.Run("derived adapters", func(t *testing.T) {
		fieldLogger := WithFields(F("component", "test"))
		if fieldLogger == nil {
			t.Error("WithFields should return a non-nil adapter")
		}
	})
}
