// layout.go — where a payload type is stored inside a Slot.
//
// The decision is made once per type and cached by type tag:
//
//	inlined  size <= 64, align <= 8, no pointers anywhere in the type
//	direct   the type is itself one pointer word (interface values count:
//	         converting them to any copies the pair without allocating)
//	celled   anything else
//
// Notes:
//   - The inline words are declared as [8]uint64, so the GC treats them as
//     scalars. A pointer copied in there would be invisible to the
//     collector; pointerFree walks the type to rule that out.
//   - Arrays of length zero hold nothing and count as pointer-free whatever
//     their element type.
package xgxcarrier

import (
	"reflect"
	"sync"
)

// layouts caches, per type tag, the holding chosen for a type.
var layouts sync.Map

// layoutOf returns how a T is stored in a Slot.
func layoutOf[T any]() holding {
	tag := typeTag[T]()
	if v, ok := layouts.Load(tag); ok {
		return v.(holding)
	}
	h := classify(reflect.TypeFor[T]())
	layouts.Store(tag, h)
	return h
}

func classify(t reflect.Type) holding {
	if t.Size() <= inlineBytes && uintptr(t.Align()) <= inlineAlign && pointerFree(t) {
		return inlined
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return direct
	default:
		return celled
	}
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
