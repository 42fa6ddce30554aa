// result.go — the conventional two-variant outcome.
package xgxcarrier

import "fmt"

// Result holds either a success value or an error value. The zero Result is
// Ok with a zero value.
type Result[T, E any] struct {
	val    T
	err    E
	failed bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v}
}

// Err returns a failed Result. T comes first so callers can write
// Err[int](e) and let E be inferred.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool { return !r.failed }

// IsErr reports whether r holds an error value.
func (r Result[T, E]) IsErr() bool { return r.failed }

// Value returns the success value and whether there is one.
func (r Result[T, E]) Value() (T, bool) { return r.val, !r.failed }

// Failure returns the error value and whether there is one.
func (r Result[T, E]) Failure() (E, bool) { return r.err, r.failed }

// Get returns both halves; ok is true for a success.
func (r Result[T, E]) Get() (val T, err E, ok bool) { return r.val, r.err, !r.failed }

// Extract returns the success value or raises the error through m.
func (r Result[T, E]) Extract(m Marker[E]) T {
	if r.failed {
		m.raise(r.err)
	}
	return r.val
}

// Materialize returns r unchanged.
func (r Result[T, E]) Materialize() Result[T, E] { return r }

func (Result[T, E]) sealed() {}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.val)
}
