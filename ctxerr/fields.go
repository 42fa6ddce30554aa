// fields.go — ordered, copy-on-write key/value context for layers.
//
// A layer keeps its fields as a slice so formatting order is the order the
// caller attached them in. Every builder returns a fresh slice; published
// slices are never written again.
package ctxerr

// Field is a single key/value pair attached to a layer.
type Field struct {
	Key string
	Val any
}

type fields []Field

// appendFields returns a new slice holding dst followed by add. The result
// never shares a backing array with dst.
func appendFields(dst fields, add ...Field) fields {
	if len(add) == 0 {
		return dst
	}
	out := make(fields, len(dst), len(dst)+len(add))
	copy(out, dst)
	return append(out, add...)
}

// fieldsFromKV reads kv as (key, value) pairs. A pair whose key is not a
// string is dropped as a whole, so later pairs stay aligned. A trailing key
// without a value gets nil.
func fieldsFromKV(kv []any) fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(fields, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		out = append(out, Field{Key: key, Val: val})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// toMap builds a fresh map; a later duplicate key wins.
func (fs fields) toMap() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
