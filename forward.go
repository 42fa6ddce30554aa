// forward.go — propagation of an inner outcome's failure to the enclosing scope.
//
// Forward is what a try-operator expands to inside a carrier body:
//
//	n := xgxcarrier.Forward(m, parse(s), nil)
//
// When the inner error type is the outer one, the inner extraction raises
// straight into the outer slot: no Mapper, no conversion call, no allocation.
// Otherwise a Mapper converts the error while it unwinds past this frame.
package xgxcarrier

// Forward extracts inner inside the scope of m. A failure of type E is
// converted to F with into; a nil into means Into[E, F].
func Forward[T, E, F any](m Marker[F], inner Outcome[T, E], into func(E) F) T {
	if sameType[E, F]() {
		return inner.Extract(newMarker[E](m.slot))
	}
	if into == nil {
		into = Into[E, F]
	}
	mp := NewMapper(m, into, apply[E, F])
	defer mp.Settle()
	v := inner.Extract(mp.InMarker())
	mp.Swallow()
	return v
}

// Try extracts inner inside the scope of m when both use the same error type.
func Try[T, E any](m Marker[E], inner Outcome[T, E]) T {
	return inner.Extract(m)
}

// Into is the implicit conversion used by Forward: e is returned as an F,
// which must be an interface E implements (typically error). Any other pair
// of types is a defect.
func Into[E, F any](e E) F {
	if f, ok := any(e).(F); ok {
		return f
	}
	panic(newDefect(nil, "no implicit conversion from %s to %s", typeName[E](), typeName[F]()))
}

// sameType reports whether E and F are the identical type.
func sameType[E, F any]() bool {
	_, ok := any((*E)(nil)).(*F)
	return ok
}
