// slot.go — per-goroutine storage for the one error currently in flight.
//
// A Slot holds at most one value at a time, written right before the carrier
// panics and taken exactly once by the Materialize frame (or a Mapper) that
// recovers it. Layout:
//
//	held    vacant | inlined | direct | celled
//	tag     (*T)(nil) for the written T, compared on every take
//	inline  64 bytes of pointer-free storage
//	ref     the value itself (direct) or the *T cell holding it (celled)
//	reset   zeroes the current cell on take or clear
//
// Where a T goes (see layout.go):
//   - inlined: pointer-free and at most 64 bytes; copied into inline.
//   - direct:  pointer-shaped (interfaces, pointers, maps, chans, funcs);
//     converting those to any never allocates.
//   - celled:  everything else (strings, structs with a string field, large
//     arrays). The Slot keeps one *T cell per such type and reuses it, so
//     only the first write of a type allocates.
//
// Notes:
//   - inline is never scanned by the GC, which is why only pointer-free
//     values may live there.
//   - A cell is zeroed on take so the Slot does not keep the error's
//     referents alive.
//   - save detaches the cell of the value it sets aside; a nested scope
//     writing the same type gets a fresh cell and cannot clobber it.
package xgxcarrier

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"
)

const (
	inlineWords = 8
	inlineBytes = inlineWords * 8
	inlineAlign = 8
)

type holding uint8

const (
	vacant holding = iota
	inlined
	direct
	celled
)

type contents struct {
	held   holding
	tag    any
	inline [inlineWords]uint64
	ref    any
	reset  func()
}

// cell is reusable storage for one non-inline, non-pointer-shaped type.
type cell struct {
	tag   any
	ptr   any // *T
	reset func()
}

// Slot is scratch storage for one in-flight error. A goroutine may own a Slot
// for its lifetime and hand it to MaterializeWith; Materialize draws one from
// an internal pool instead. A Slot must not be used by two goroutines at once.
//
// The zero value is an empty Slot ready for use.
type Slot struct {
	c     contents
	cells []cell
	sig   signal
}

// NewSlot returns an empty Slot.
func NewSlot() *Slot { return new(Slot) }

// Empty reports whether the slot currently holds no value.
func (s *Slot) Empty() bool { return s.c.held == vacant }

func typeTag[T any]() any { return (*T)(nil) }

func slotWrite[T any](s *Slot, v T) {
	tag := typeTag[T]()
	h := layoutOf[T]()
	switch h {
	case inlined:
		*(*T)(unsafe.Pointer(&s.c.inline)) = v
		s.c.ref, s.c.reset = nil, nil
	case direct:
		s.c.ref, s.c.reset = v, nil
	default:
		p, reset := cellFor[T](s, tag)
		*p = v
		s.c.ref, s.c.reset = p, reset
	}
	s.c.tag = tag
	s.c.held = h
}

// slotTake removes the held value if it was written as a T. On a type
// mismatch the slot is left as it is.
func slotTake[T any](s *Slot) (T, bool) {
	var v T
	if s.c.held == vacant || s.c.tag != typeTag[T]() {
		return v, false
	}
	switch s.c.held {
	case inlined:
		v = *(*T)(unsafe.Pointer(&s.c.inline))
	case direct:
		// nil ref with a matching tag is a nil interface value.
		if s.c.ref != nil {
			v = s.c.ref.(T)
		}
	case celled:
		v = *s.c.ref.(*T)
	}
	s.clear()
	return v, true
}

// cellFor returns the Slot's cell for T, creating it on first use.
func cellFor[T any](s *Slot, tag any) (*T, func()) {
	for i := range s.cells {
		if s.cells[i].tag == tag {
			return s.cells[i].ptr.(*T), s.cells[i].reset
		}
	}
	p := new(T)
	reset := func() {
		var zero T
		*p = zero
	}
	s.cells = append(s.cells, cell{tag: tag, ptr: p, reset: reset})
	return p, reset
}

func (s *Slot) clear() {
	if s.c.held == celled && s.c.reset != nil {
		s.c.reset()
	}
	s.c.held = vacant
	s.c.tag = nil
	s.c.ref = nil
	s.c.reset = nil
}

// save moves the current contents out so a nested scope can use the slot.
func (s *Slot) save() contents {
	if s.c.held == vacant {
		return contents{}
	}
	c := s.c
	if c.held == celled {
		s.detach(c.tag)
	}
	s.c = contents{}
	return c
}

// restore puts back contents taken by save, cell included.
func (s *Slot) restore(c contents) {
	if c.held == celled {
		s.attach(cell{tag: c.tag, ptr: c.ref, reset: c.reset})
	}
	s.c = c
}

func (s *Slot) detach(tag any) {
	for i := range s.cells {
		if s.cells[i].tag == tag {
			last := len(s.cells) - 1
			s.cells[i] = s.cells[last]
			s.cells[last] = cell{}
			s.cells = s.cells[:last]
			return
		}
	}
}

func (s *Slot) attach(c cell) {
	for i := range s.cells {
		if s.cells[i].tag == c.tag {
			s.cells[i] = c
			return
		}
	}
	s.cells = append(s.cells, c)
}

func (s *Slot) heldType() string {
	if s.c.held == vacant {
		return ""
	}
	return tagName(s.c.tag)
}

func typeName[T any]() string { return tagName(typeTag[T]()) }

func tagName(tag any) string { return strings.TrimPrefix(fmt.Sprintf("%T", tag), "*") }

var slotPool = sync.Pool{New: func() any { return NewSlot() }}

func acquireSlot() *Slot { return slotPool.Get().(*Slot) }

func releaseSlot(s *Slot) {
	if !s.Empty() {
		logDirtySlot(s)
		s.clear()
	}
	slotPool.Put(s)
}
