package xgxcarrier

// MapErr applies fn to the error of o and leaves a success untouched. A Result
// is mapped immediately; a Carrier is wrapped so that fn runs while its
// failure unwinds, and never runs on success.
func MapErr[T, E, F any](o Outcome[T, E], fn func(E) F) Outcome[T, F] {
	if r, ok := o.(Result[T, E]); ok {
		if e, failed := r.Failure(); failed {
			return Err[T](fn(e))
		}
		return Ok[T, F](r.val)
	}
	return Func(func(m Marker[F]) T {
		mp := NewMapper(m, fn, apply[E, F])
		defer mp.Settle()
		v := o.Extract(mp.InMarker())
		mp.Swallow()
		return v
	})
}

// InspectErr calls fn with the error of o, if any, and keeps the error as it
// was. fn may itself materialize carriers; the original error is written back
// afterwards.
func InspectErr[T, E any](o Outcome[T, E], fn func(E)) Outcome[T, E] {
	return MapErr(o, func(e E) E {
		fn(e)
		return e
	})
}

// MapErrShared lets a computation and its error handler share state. body
// gets a pointer to state while it runs; if the outcome it returns fails, fn
// receives the state value together with the error.
//
//	buf := make([]byte, 0, 64)
//	out := xgxcarrier.MapErrShared(buf,
//		func(b *[]byte) xgxcarrier.Outcome[int, error] { return fill(b) },
//		func(b []byte, err error) error { return fmt.Errorf("after %d bytes: %w", len(b), err) },
//	)
func MapErrShared[T, E, F, S any](state S, body func(*S) Outcome[T, E], fn func(S, E) F) Outcome[T, F] {
	return Func(func(m Marker[F]) T {
		mp := NewMapper(m, state, fn)
		defer mp.Settle()
		v := body(mp.State()).Extract(mp.InMarker())
		mp.Swallow()
		return v
	})
}

func apply[E, F any](fn func(E) F, e E) F { return fn(e) }
