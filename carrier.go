package xgxcarrier

// Carrier is an outcome whose failure travels by unwinding instead of by
// return value. The function receives the Marker of the scope it reports to
// and returns the success value directly; on failure it calls Fail (or
// extracts a failing Outcome) and never returns.
//
// A Carrier should be consumed right away: extracted into an enclosing
// carrier body (Try, Forward, MapErr) or materialized. Running it twice runs
// the body twice.
type Carrier[T, E any] func(Marker[E]) T

// Func turns a carrier body into a Carrier, inferring T and E from fn.
//
//	func checkedDivide(a, b uint32) xgxcarrier.Carrier[uint32, string] {
//		return xgxcarrier.Func(func(m xgxcarrier.Marker[string]) uint32 {
//			if b == 0 {
//				return xgxcarrier.Fail[uint32](m, "Cannot divide by zero")
//			}
//			return a / b
//		})
//	}
func Func[T, E any](fn func(Marker[E]) T) Carrier[T, E] { return fn }

// Extract runs the body against m.
func (c Carrier[T, E]) Extract(m Marker[E]) T { return c(m) }

// Materialize runs the body on a pooled Slot and recovers its failure.
func (c Carrier[T, E]) Materialize() Result[T, E] {
	s := acquireSlot()
	defer releaseSlot(s)
	return catch[T, E](s, c)
}

func (Carrier[T, E]) sealed() {}
