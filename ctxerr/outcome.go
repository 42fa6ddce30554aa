// outcome.go — context helpers expressed as outcomes.
//
// Every helper defers its work to the failure path through
// xgxcarrier.MapErr: on a Carrier, a Mapper rewrites the in-flight error as
// it unwinds; on a Result, the error is rewritten on the spot.
package ctxerr

import (
	xgxcarrier "github.com/xgx-io/xgx-carrier"
)

// Context adds a layer with msg and kv fields to the error of o.
func Context[T, E any](o xgxcarrier.Outcome[T, E], msg string, kv ...any) xgxcarrier.Outcome[T, error] {
	fs := fieldsFromKV(kv)
	return xgxcarrier.MapErr(o, func(e E) error {
		return wrap(e, msg, fs, 1)
	})
}

// WithContext is Context with a message computed only once o has failed.
func WithContext[T, E any](o xgxcarrier.Outcome[T, E], msg func() string) xgxcarrier.Outcome[T, error] {
	return xgxcarrier.MapErr(o, func(e E) error {
		return wrap(e, msg(), nil, 1)
	})
}

// Recode classifies the error of o with code. An existing layer is recoded
// in place (copy-on-write); any other failure gets a bare layer first.
func Recode[T, E any](o xgxcarrier.Outcome[T, E], code Code) xgxcarrier.Outcome[T, error] {
	return xgxcarrier.MapErr(o, func(e E) error {
		if l, ok := any(e).(Error); ok {
			return l.Code(code)
		}
		l := wrap(e, "", nil, 1)
		l.code = code
		return l
	})
}

// Require turns an optional value into an outcome: v when ok, otherwise a
// layer carrying msg and kv.
func Require[T any](v T, ok bool, msg string, kv ...any) xgxcarrier.Result[T, error] {
	if ok {
		return xgxcarrier.Ok[T, error](v)
	}
	return xgxcarrier.Err[T, error](wrap(nil, msg, fieldsFromKV(kv), 1))
}
