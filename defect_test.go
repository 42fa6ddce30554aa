package xgxcarrier

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefect_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	d := newDefect(cause, "bad %s", "state")
	require.Equal(t, "defect: bad state: root", d.Error())
	require.ErrorIs(t, d, cause)
	require.True(t, IsDefect(fmt.Errorf("outer: %w", d)))
	require.False(t, IsDefect(cause))
	require.False(t, IsDefect(nil))

	require.Equal(t, "defect: plain", newDefect(nil, "plain").Error())
}

func TestDefect_RecordsCallerStack(t *testing.T) {
	t.Parallel()

	p := recovered(func() { Fail[int](Marker[error]{}, errors.New("x")) })
	var d *DefectError
	require.ErrorAs(t, p.(error), &d)
	require.NotEmpty(t, d.Stack())
	require.Contains(t, d.Stack()[0].Function, "Fail")
}

func TestDefect_Format(t *testing.T) {
	t.Parallel()

	d := newDefect(errors.New("root"), "broken")
	require.Equal(t, "defect: broken: root", fmt.Sprintf("%v", d))
	require.Equal(t, `"defect: broken: root"`, fmt.Sprintf("%q", d))

	verbose := fmt.Sprintf("%+v", d)
	require.True(t, strings.HasPrefix(verbose, `code=defect msg="broken"`), verbose)
	require.Contains(t, verbose, "\ncause: root")
	require.Contains(t, verbose, "\nstack:")
}

func TestDefect_SlotTypeMismatchOnUnwind(t *testing.T) {
	t.Parallel()

	s := NewSlot()
	p := recovered(func() {
		MaterializeWith(s, Func(func(m Marker[string]) int {
			// Simulate a raise whose payload was written under another type.
			slotWrite(s, 99)
			panic(&s.sig)
		}))
	})
	err, ok := p.(error)
	require.True(t, ok)
	require.True(t, IsDefect(err))
	require.Contains(t, err.Error(), `slot holding "int", want string`)
	require.True(t, s.Empty())
}
