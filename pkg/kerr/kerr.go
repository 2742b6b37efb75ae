// Package kerr defines the generator's error taxonomy (§7 of the
// specification): a small set of typed kinds shared by every package in the
// kernel, so a caller can branch on *what went wrong* with errors.As rather
// than string-matching a message.
package kerr

import "fmt"

// Kind classifies a generator error. Every Kind here is fatal per §7 except
// DepthExceeded, which is the recursion-depth ceiling recommended in §9 (not
// present in the original source) and is recoverable by the same caller
// that set the ceiling.
type Kind int

const (
	// UnknownPossibility: a title referenced by a choice is not in the
	// possibility library.
	UnknownPossibility Kind = iota
	// UnknownMode: a schema's contents.mode is not one of the four recognized modes.
	UnknownMode
	// UnknownChildType: a child's type is not one of Known, Random, Final.
	UnknownChildType
	// UnknownDirection: a direction string is not one of top/right/bottom/left.
	UnknownDirection
	// MalformedSchema: a spacing form is unrecognized, a Final child lacks
	// source, or contents lacks a mode.
	MalformedSchema
	// MissingSettings: the driver was constructed without a possibility library.
	MissingSettings
	// DepthExceeded: recursion passed the configured depth ceiling.
	DepthExceeded
)

func (k Kind) String() string {
	switch k {
	case UnknownPossibility:
		return "UnknownPossibility"
	case UnknownMode:
		return "UnknownMode"
	case UnknownChildType:
		return "UnknownChildType"
	case UnknownDirection:
		return "UnknownDirection"
	case MalformedSchema:
		return "MalformedSchema"
	case MissingSettings:
		return "MissingSettings"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type every kernel package returns for a
// taxonomy failure. It carries both a Kind for programmatic dispatch and a
// human-readable message identifying the offending title or mode, as §7
// requires ("descriptive message identifying the offending title or mode").
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a kerr.Error of the given kind, following the
// same errors.Is-friendly shape the teacher's PacingError sentinels use.
func Is(err error, kind Kind) bool {
	var e *Error
	if ge, ok := err.(*Error); ok {
		e = ge
	} else {
		return false
	}
	return e.Kind == kind
}
