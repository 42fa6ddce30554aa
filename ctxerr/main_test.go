package ctxerr

import (
	"testing"

	"go.uber.org/goleak"

	xgxcarrier "github.com/xgx-io/xgx-carrier"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func checkedDivide(a, b uint32) xgxcarrier.Carrier[uint32, string] {
	return xgxcarrier.Func(func(m xgxcarrier.Marker[string]) uint32 {
		if b == 0 {
			return xgxcarrier.Fail[uint32](m, "Cannot divide by zero")
		}
		return a / b
	})
}
