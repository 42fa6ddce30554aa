package xgxcarrier

// Marker proves that a Materialize scope expecting errors of type E is active
// on the current goroutine. Only Materialize and Mapper create markers; a body
// receives one and passes it on, it never builds its own. The zero Marker is
// invalid.
//
// A Marker is a single pointer wide: it carries the Slot its scope recovers
// from, since Go has no goroutine-local storage to find it by.
type Marker[E any] struct {
	slot *Slot
}

func newMarker[E any](s *Slot) Marker[E] { return Marker[E]{slot: s} }

// signal is the private panic payload of a carrier unwind. Each Slot owns
// one, so a Materialize frame recovers only unwinds aimed at its own slot.
type signal struct {
	_ uint8
}

func (*signal) Error() string {
	return "xgxcarrier: carrier unwind escaped every Materialize"
}

// raise stores e and unwinds to the scope owning m.
func (m Marker[E]) raise(e E) {
	if m.slot == nil {
		panic(newDefect(nil, "raise through a zero Marker[%s]", typeName[E]()))
	}
	slotWrite(m.slot, e)
	panic(&m.slot.sig)
}

// Fail unwinds to the scope owning m, carrying e. It never returns; the T
// result lets a carrier body write
//
//	return xgxcarrier.Fail[int](m, errOverflow)
func Fail[T, E any](m Marker[E], e E) T {
	m.raise(e)
	panic("unreachable")
}

// Unwinding reports whether v, a value returned by recover, is a carrier
// unwind. Code that recovers for its own reasons inside a carrier body must
// re-panic such values unchanged.
func Unwinding(v any) bool {
	_, ok := v.(*signal)
	return ok
}
