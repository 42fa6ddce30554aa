package xgxcarrier

// Outcome is the common face of a conventional Result and a Carrier. Callers
// cannot tell them apart once materialized.
//
// Outcome is sealed: Result and Carrier are its only implementations. Other
// packages participate by building Carriers (see Func and MapErr).
type Outcome[T, E any] interface {
	// Extract returns the success value, or writes the error into m's slot
	// and unwinds to m's scope. It does not return on failure.
	Extract(m Marker[E]) T

	// Materialize forces the outcome into a Result, recovering a carrier
	// unwind if one happens. Foreign panics pass through untouched.
	Materialize() Result[T, E]

	sealed()
}

// Materialize is Outcome.Materialize as a function, handy where a method
// value would need explicit type arguments.
func Materialize[T, E any](o Outcome[T, E]) Result[T, E] {
	return o.Materialize()
}

// MaterializeWith is Materialize using a caller-owned Slot, typically one a
// goroutine created at startup and keeps for its lifetime. A value already in
// s (left by an enclosing scope that is still unwinding) is set aside for the
// duration of the call and restored afterwards.
func MaterializeWith[T, E any](s *Slot, o Outcome[T, E]) Result[T, E] {
	if r, ok := o.(Result[T, E]); ok {
		return r
	}
	return catch(s, o)
}

// catch runs o's extraction on s and turns an unwind aimed at s back into an
// Err. Every other panic payload is re-raised as it was.
func catch[T, E any](s *Slot, o Outcome[T, E]) (res Result[T, E]) {
	outer := s.save()
	defer func() {
		p := recover()
		if p == nil {
			// Normal return, or runtime.Goexit passing through.
			s.restore(outer)
			return
		}
		if p != any(&s.sig) {
			s.clear()
			s.restore(outer)
			logForeign(p)
			panic(p)
		}
		e, ok := slotTake[E](s)
		if !ok {
			held := s.heldType()
			s.clear()
			s.restore(outer)
			panic(newDefect(nil, "carrier unwind with slot holding %q, want %s", held, typeName[E]()))
		}
		s.restore(outer)
		res = Err[T](e)
	}()
	return Ok[T, E](o.Extract(newMarker[E](s)))
}
