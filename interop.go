// interop.go — crossings between carriers and Go's (value, error) convention.
package xgxcarrier

// From lifts a Go (value, error) pair into a Result, so a call such as
// os.ReadFile can be forwarded directly:
//
//	data := xgxcarrier.Try(m, xgxcarrier.From(os.ReadFile(path)))
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Unpack lowers a Result back to a Go (value, error) pair.
func Unpack[T any](r Result[T, error]) (T, error) {
	if e, failed := r.Failure(); failed {
		var zero T
		return zero, e
	}
	return r.val, nil
}

// Catch runs a carrier body at a Go API boundary and reports its failure as
// an ordinary error.
func Catch[T any](body func(Marker[error]) T) (T, error) {
	return Unpack(Func(body).Materialize())
}
