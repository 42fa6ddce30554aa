package ctxerr

import "errors"

// CodeOf returns the first code found along err's chain, or "".
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv interface{ CodeVal() Code }
	if errors.As(err, &cv) {
		return cv.CodeVal()
	}
	return ""
}

// HasCode reports whether err's chain resolves to code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
