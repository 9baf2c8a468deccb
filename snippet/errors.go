package snippet

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLineNumber is returned when the requested line is outside the file.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrInvalidContextRadius is returned for a negative context radius.
	ErrInvalidContextRadius = errors.New("invalid context radius")

	// ErrSubstringNotFound is returned when a highlight payload is not on the target line.
	ErrSubstringNotFound = errors.New("substring not found")

	// ErrIndexOutOfRange is returned when TargetIndex no longer points into Lines.
	ErrIndexOutOfRange = errors.New("index out of range")
)
