package model

import "fmt"

// ErrorKind classifies model construction failures.
type ErrorKind string

const (
	UnknownReference ErrorKind = "unknown reference"
	DuplicateID      ErrorKind = "duplicate id"
	Disconnected     ErrorKind = "disconnected structure"
	NonFinite        ErrorKind = "non-finite value"
	InvalidInput     ErrorKind = "invalid input"
)

// Error reports an invalid or inconsistent model definition. It is
// returned before any numeric work starts.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("model error (%s): %s", e.Kind, e.Detail)
}

func errf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
