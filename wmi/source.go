// Package wmi models the Windows system-management query boundary used to
// read hardware and firmware attributes. A Source answers single-property
// queries against CIM/WMI classes and reports its outcome as an explicit
// Result state instead of raising errors, so callers can drive retry
// decisions without exception-style control flow.
//
// The production implementation shells out to PowerShell Get-CimInstance
// (wmic is deprecated on current Windows versions); tests substitute a
// scripted Source or Executor.
package wmi

import (
	"context"
	"errors"
)

// ErrClassNotFound reports that the queried CIM class does not exist on
// this system, for example Win32_Tpm on machines without a TPM.
var ErrClassNotFound = errors.New("cim class not found")

// State describes the outcome of a single attribute query
type State int

const (
	// StateFound means the query matched an instance with a non-null value
	StateFound State = iota
	// StateNotFound means the class had no instances or the property was null
	StateNotFound
	// StateTimedOut means the query did not answer within its deadline
	StateTimedOut
	// StateFailed means the query failed for any other reason
	StateFailed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateFound:
		return "found"
	case StateNotFound:
		return "not-found"
	case StateTimedOut:
		return "timed-out"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single attribute query. Exactly one of Value
// and Bytes is set when State is StateFound; Bytes carries properties whose
// native representation is a byte sequence.
type Result struct {
	State State
	Value string
	Bytes []byte
	Err   error
}

// Value creates a found result carrying a string value
func Value(value string) Result {
	return Result{State: StateFound, Value: value}
}

// Bytes creates a found result carrying a raw byte sequence
func Bytes(value []byte) Result {
	return Result{State: StateFound, Bytes: value}
}

// Missing creates a result for a query that matched no non-null value
func Missing() Result {
	return Result{State: StateNotFound}
}

// Timeout creates a result for a query that exceeded its deadline
func Timeout() Result {
	return Result{State: StateTimedOut}
}

// Failure creates a result for a query that failed
func Failure(err error) Result {
	return Result{State: StateFailed, Err: err}
}

// Source answers hardware and firmware attribute queries. Implementations
// must honor the context deadline on every call.
type Source interface {
	// Query returns the named property of the first instance of the class
	Query(ctx context.Context, class, property string) Result

	// ClassExists reports whether the class is registered on this system
	ClassExists(ctx context.Context, class string) (bool, error)
}
