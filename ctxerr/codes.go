// codes.go — machine-readable classification for context layers.
//
// Codes are plain lowercase snake_case strings. The set below covers what a
// carrier boundary usually needs to tell apart; projects add their own freely.
package ctxerr

// Code classifies an error. The empty Code means unspecified.
type Code string

const (
	CodeInvalid     Code = "invalid"
	CodeNotFound    Code = "not_found"
	CodeConflict    Code = "conflict"
	CodeTimeout     Code = "timeout"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal"
)

var builtinCodes = []Code{
	CodeInvalid,
	CodeNotFound,
	CodeConflict,
	CodeTimeout,
	CodeUnavailable,
	CodeInternal,
}

// BuiltinCodes returns a copy of the codes shipped with the package.
func BuiltinCodes() []Code {
	out := make([]Code, len(builtinCodes))
	copy(out, builtinCodes)
	return out
}

// IsBuiltin reports whether c is one of BuiltinCodes.
func (c Code) IsBuiltin() bool {
	for _, b := range builtinCodes {
		if b == c {
			return true
		}
	}
	return false
}
