// mapper.go — scope guard that rewrites an in-flight error while unwinding.
//
// Usage inside a carrier body reporting errors of type Out:
//
//	mp := xgxcarrier.NewMapper(m, state, fn)
//	defer mp.Settle()
//	v := inner.Extract(mp.InMarker())
//	mp.Swallow()
//	return v
//
// Exactly one of {fn fires, Swallow} happens per Mapper: Settle is a no-op
// once Swallow ran, and firing disarms the Mapper before fn is called.
package xgxcarrier

// noCopy trips go vet's copylocks check on copied Mappers.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Mapper transforms an error of type In into Out while a carrier unwind passes
// its frame. It must not be copied after creation.
type Mapper[S, In, Out any] struct {
	_     noCopy
	slot  *Slot
	state S
	fn    func(S, In) Out
	armed bool
}

// NewMapper arms a Mapper reporting to out's scope. state is handed to fn
// (by value) if the guarded extraction fails; until then the body can reach
// it through State.
func NewMapper[S, In, Out any](out Marker[Out], state S, fn func(S, In) Out) Mapper[S, In, Out] {
	return Mapper[S, In, Out]{slot: out.slot, state: state, fn: fn, armed: true}
}

// InMarker returns the marker the guarded extraction must raise through.
func (mp *Mapper[S, In, Out]) InMarker() Marker[In] {
	return newMarker[In](mp.slot)
}

// State exposes the captured state to the guarded computation.
func (mp *Mapper[S, In, Out]) State() *S { return &mp.state }

// Swallow disarms the Mapper after the guarded extraction returned normally.
func (mp *Mapper[S, In, Out]) Swallow() {
	if !mp.armed {
		return
	}
	mp.disarm()
}

// Settle must be deferred right after NewMapper. If the Mapper is still armed
// the frame is unwinding: an In in the slot is replaced by fn(state, in).
// Anything else in flight (a foreign panic, a value of another type) is left
// alone.
func (mp *Mapper[S, In, Out]) Settle() {
	if !mp.armed {
		return
	}
	state, fn := mp.state, mp.fn
	mp.disarm()
	in, ok := slotTake[In](mp.slot)
	if !ok {
		return
	}
	slotWrite(mp.slot, fn(state, in))
}

func (mp *Mapper[S, In, Out]) disarm() {
	var zero S
	mp.state, mp.fn, mp.armed = zero, nil, false
}
