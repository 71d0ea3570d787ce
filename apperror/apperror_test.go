package apperror_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/valentin-kaiser/hwident/apperror"
)

func TestNewError(t *testing.T) {
	err := apperror.NewError("something failed")
	if err.Message != "something failed" {
		t.Errorf("Message = %q, expected %q", err.Message, "something failed")
	}

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "something failed")
	}

	if !strings.Contains(err.Caller, "apperror_test.go") {
		t.Errorf("Caller = %q, expected it to reference the test file", err.Caller)
	}
}

func TestNewErrorf(t *testing.T) {
	err := apperror.NewErrorf("query %q failed after %d attempts", "cpu", 3)
	expected := `query "cpu" failed after 3 attempts`
	if err.Message != expected {
		t.Errorf("Message = %q, expected %q", err.Message, expected)
	}
}

func TestWrap(t *testing.T) {
	if apperror.Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	original := apperror.NewError("original")
	if apperror.Wrap(original) != original {
		t.Error("Wrap should return an existing *Error unchanged")
	}

	plain := errors.New("plain failure")
	wrapped := apperror.Wrap(plain)
	if !errors.Is(wrapped, plain) {
		t.Error("wrapped error should match the original with errors.Is")
	}
}

func TestAddError(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := apperror.NewError("operation failed").AddError(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the attached cause")
	}

	if !strings.Contains(err.Error(), "underlying cause") {
		t.Errorf("Error() = %q, expected it to include the cause", err.Error())
	}

	// nil causes are ignored
	before := len(err.Errors)
	err.AddError(nil)
	if len(err.Errors) != before {
		t.Error("AddError(nil) should not append anything")
	}
}
