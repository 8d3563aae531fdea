package cfgx

import (
	"strconv"
	"strings"
)

// ErrorCode defines string error
type ErrorCode string

// ErrorCode returns error message
func (e ErrorCode) Error() string {
	return string(e)
}

const (
	// ErrNotPresent indicates that a source was readable but did not contain the item
	ErrNotPresent = ErrorCode("item not present")
	// ErrReadFailed indicates that a source location could not be built or read
	ErrReadFailed = ErrorCode("read failed")
	// ErrNotFound indicates that no source in the priority list produced the item
	ErrNotFound = ErrorCode("config item not found")
	// ErrUnknownSource indicates that the priority list names a source which is not registered
	ErrUnknownSource = ErrorCode("unknown source")
)

// Error describes a single failed attempt of a source.
type Error struct {
	// Source is the name of the source which produced the error
	Source string
	// Location is a file path or an environment variable name
	Location string
	// Item is the requested item, empty when Location already identifies it
	Item  string
	Cause error
}

func (e Error) Error() string {
	sb := new(strings.Builder)
	sb.WriteString(e.Source)
	if e.Location != "" {
		sb.WriteString(" " + strconv.Quote(e.Location))
	}
	if e.Item != "" {
		sb.WriteString(" item " + strconv.Quote(e.Item))
	}
	if e.Cause != nil {
		sb.WriteString(": " + e.Cause.Error())
	}
	return sb.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// NotFoundError is returned by the dispatcher when no source produced the requested item.
// Causes holds every failure collected during the lookup in the order they were recorded.
type NotFoundError struct {
	Key    Key
	Causes []error
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(string(ErrNotFound))
	b.WriteString(" due to the following errors:")
	for _, cause := range e.Causes {
		b.WriteString("\n")
		b.WriteString(cause.Error())
	}

	return b.String()
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() []error {
	return e.Causes
}
