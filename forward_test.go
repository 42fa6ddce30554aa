// forward_test.go — Forward, Try and the implicit Into conversion.
package xgxcarrier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForward_SameTypeBypassesConversion(t *testing.T) {
	t.Parallel()

	conversions := 0
	into := func(e string) string {
		conversions++
		return e
	}
	body := func(b uint32) Carrier[uint32, string] {
		return Func(func(m Marker[string]) uint32 {
			return Forward(m, checkedDivide(10, b), into) + 1
		})
	}

	require.Equal(t, Ok[uint32, string](6), body(2).Materialize())
	require.Equal(t, Err[uint32]("Cannot divide by zero"), body(0).Materialize())
	require.Zero(t, conversions)
}

func TestForward_SameTypeDoesNotAllocate(t *testing.T) {
	s := NewSlot()
	inner := checkedDivide(10, 5)
	outer := Func(func(m Marker[string]) uint32 {
		return Forward(m, inner, nil)
	})
	// Warm up.
	_ = MaterializeWith[uint32, string](s, outer)

	allocs := testing.AllocsPerRun(100, func() {
		_ = MaterializeWith[uint32, string](s, outer)
	})
	require.Zero(t, allocs)
}

func TestForward_ConvertsOnceOnFailure(t *testing.T) {
	t.Parallel()

	conversions := 0
	into := func(e string) error {
		conversions++
		return errors.New("wrapped: " + e)
	}
	_, err := Catch(func(m Marker[error]) uint32 {
		return Forward(m, checkedDivide(1, 0), into)
	})
	require.EqualError(t, err, "wrapped: Cannot divide by zero")
	require.Equal(t, 1, conversions)
}

func TestForward_NilIntoUsesInterfaceConversion(t *testing.T) {
	t.Parallel()

	cause := &codedErr{code: 7}
	failing := Func(func(m Marker[*codedErr]) int {
		return Fail[int](m, cause)
	})

	v, err := Catch(func(m Marker[error]) int {
		return Forward(m, failing, nil)
	})
	require.Zero(t, v)
	var ce *codedErr
	require.ErrorAs(t, err, &ce)
	require.Same(t, cause, ce)
}

func TestForward_IncompatibleTypesAreDefect(t *testing.T) {
	t.Parallel()

	p := recovered(func() {
		Func(func(m Marker[int]) uint32 {
			return Forward(m, checkedDivide(1, 0), nil)
		}).Materialize()
	})
	err, ok := p.(error)
	require.True(t, ok, "panic value %T", p)
	require.True(t, IsDefect(err))
	require.Contains(t, err.Error(), "no implicit conversion from string to int")
}

func TestForward_SuccessSkipsConversion(t *testing.T) {
	t.Parallel()

	v, err := Catch(func(m Marker[error]) uint32 {
		return Forward(m, checkedDivide(9, 3), func(string) error {
			t.Fatal("conversion on success")
			return nil
		})
	})
	require.NoError(t, err)
	require.Equal(t, uint32(3), v)
}

func TestInto(t *testing.T) {
	t.Parallel()

	cause := &codedErr{code: 1}
	require.Same(t, cause, Into[*codedErr, error](cause))

	p := recovered(func() { Into[string, int]("x") })
	require.True(t, IsDefect(p.(error)))
}

func TestTry_ResultAndCarrier(t *testing.T) {
	t.Parallel()

	sum := Func(func(m Marker[string]) uint32 {
		return Try(m, resultDivide(12, 3)) + Try(m, checkedDivide(12, 4))
	})
	require.Equal(t, Ok[uint32, string](7), sum.Materialize())
}

func TestSameType(t *testing.T) {
	t.Parallel()

	require.True(t, sameType[string, string]())
	require.True(t, sameType[error, error]())
	require.False(t, sameType[*codedErr, error]())
	require.False(t, sameType[int, int64]())
}
