package ctxerr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldsFromKV(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		kv   []any
		want fields
	}{
		{"empty", nil, nil},
		{"pairs", []any{"a", 1, "b", "two"}, fields{{"a", 1}, {"b", "two"}}},
		{"trailing key", []any{"a", 1, "b"}, fields{{"a", 1}, {"b", nil}}},
		{"non-string key drops pair", []any{3, "x", "b", 2}, fields{{"b", 2}}},
		{"only bad keys", []any{1, 2}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, fieldsFromKV(tc.kv))
		})
	}
}

func TestAppendFields_NeverAliases(t *testing.T) {
	t.Parallel()

	base := make(fields, 1, 8)
	base[0] = Field{"a", 1}
	x := appendFields(base, Field{"x", 1})
	y := appendFields(base, Field{"y", 2})

	require.Equal(t, "x", x[1].Key)
	require.Equal(t, "y", y[1].Key)
	require.Len(t, base, 1)
	require.Equal(t, base, appendFields(base))
}

func TestToMap_LaterKeyWins(t *testing.T) {
	t.Parallel()

	require.Equal(t, map[string]any{"k": 2}, fields{{"k", 1}, {"k", 2}}.toMap())
	require.Nil(t, fields(nil).toMap())
}

func TestBuiltinCodes(t *testing.T) {
	t.Parallel()

	codes := BuiltinCodes()
	require.Len(t, codes, 6)
	for _, c := range codes {
		require.True(t, c.IsBuiltin(), c)
	}
	codes[0] = "mutated"
	require.Equal(t, CodeInvalid, BuiltinCodes()[0])
	require.False(t, Code("teapot").IsBuiltin())
}
