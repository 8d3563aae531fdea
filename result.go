package cfgx

import "errors"

// Status tags a Result as a success or a failure.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Result holds either a value or a non-empty list of failure causes.
// The variant is tracked explicitly, so empty strings, zeros and empty
// collections are valid success values.
// The zero Result is a failure without causes.
type Result[T any] struct {
	val      T
	failures []error
	ok       bool
}

// Ok returns a successful Result carrying val.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val, ok: true}
}

// Fail returns a failed Result carrying at least one cause.
func Fail[T any](cause error, more ...error) Result[T] {
	failures := make([]error, 0, len(more)+1)
	failures = append(failures, cause)
	failures = append(failures, more...)

	return Result[T]{failures: failures}
}

// Status returns the variant tag.
func (r Result[T]) Status() Status {
	if r.ok {
		return StatusOK
	}
	return StatusError
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the held value and true on success.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.val, true
}

// Failures returns a copy of the failure causes; nil on success.
func (r Result[T]) Failures() []error {
	if r.ok || len(r.failures) == 0 {
		return nil
	}
	out := make([]error, len(r.failures))
	copy(out, r.failures)

	return out
}

// Err joins the failure causes into a single error; nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return errors.Join(r.failures...)
}

// StatusAndValue returns the tag paired with either the value or the failure list.
func (r Result[T]) StatusAndValue() (Status, any) {
	if r.ok {
		return StatusOK, r.val
	}
	return StatusError, r.Failures()
}
