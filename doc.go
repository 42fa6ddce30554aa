// doc.go — package documentation for xgx-carrier
//
// Package xgxcarrier carries errors by unwinding. A function that would return
// (T, error) instead returns a Carrier[T, E]: on success it yields the bare T,
// with no error word to test at every call site; on failure it stores the
// error in a per-goroutine Slot and panics with a private payload. The panic
// travels up through any number of carrier frames until a Materialize call
// recovers it and hands back an ordinary Result[T, E].
//
// The success path gets cheaper and the failure path gets much slower (a
// panic and a recover). Use carriers where failure is rare, say less than
// once per tens of thousands of calls.
//
// # Pieces
//
//   - Slot: scratch storage for the one error in flight. Pointer-free
//     payloads up to 64 bytes are stored inline, pointer-shaped ones by
//     reference, and the rest in a per-type cell the Slot reuses.
//   - Marker[E]: proof that a scope recovering errors of type E is active.
//     Only Materialize and Mapper create them.
//   - Outcome[T, E]: Result and Carrier behind one interface; Extract to get
//     the value inside a carrier body, Materialize at a boundary.
//   - Mapper: a deferred guard that rewrites the in-flight error as it
//     passes, used by MapErr and Forward.
//   - Forward / Try: propagate an inner outcome to the enclosing scope,
//     converting the error type only when it differs.
//
// # Example
//
//	func checkedDivide(a, b uint32) xgxcarrier.Carrier[uint32, string] {
//		return xgxcarrier.Func(func(m xgxcarrier.Marker[string]) uint32 {
//			if b == 0 {
//				return xgxcarrier.Fail[uint32](m, "Cannot divide by zero")
//			}
//			return a / b
//		})
//	}
//
//	func divideAll(a uint32, bs []uint32) xgxcarrier.Carrier[[]uint32, string] {
//		return xgxcarrier.Func(func(m xgxcarrier.Marker[string]) []uint32 {
//			out := make([]uint32, 0, len(bs))
//			for _, b := range bs {
//				out = append(out, xgxcarrier.Try(m, checkedDivide(a, b)))
//			}
//			return out
//		})
//	}
//
//	res := divideAll(5, []uint32{1, 2, 3, 0}).Materialize()
//	// res.String() == "Err(Cannot divide by zero)"
//
// # Rules
//
// Whatever a Carrier returns must be consumed immediately: extracted with Try,
// Forward or MapErr inside another carrier body, or materialized. Never keep a
// Marker beyond the body it was passed to.
//
// Foreign panics (anything not raised through a Marker) are never swallowed:
// Materialize re-panics them with the identical value. Code that recovers
// inside a carrier body for its own reasons must check Unwinding and re-panic
// carrier payloads.
//
// Broken contracts (a zero Marker, conversions Into cannot perform) panic with
// a *DefectError, which is foreign to every Materialize.
//
// # Goroutines
//
// A Slot belongs to one goroutine at a time. Materialize takes one from a
// pool for the duration of the call; MaterializeWith uses one the caller
// owns. Unwinding never crosses goroutines, so there is no locking.
//
// # Diagnostics
//
// SetLogger installs a zap logger for the rare events worth reporting: foreign
// panics crossing Materialize (debug, toggled by XGX_CARRIER_LOG_FOREIGN) and
// slots released while still holding a value (error).
//
// Attaching context to carried errors lives in package ctxerr.
package xgxcarrier
