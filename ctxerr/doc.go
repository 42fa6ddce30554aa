// Package ctxerr attaches human context to errors travelling through
// xgxcarrier outcomes.
//
// Each helper returns an Outcome with error type error, built on
// xgxcarrier.MapErr, so it composes with Forward and Try like any other
// outcome:
//
//	cfg := xgxcarrier.Try(m, ctxerr.Context(loadConfig(path), "loading config", "path", path))
//
// The context is only computed when the inner outcome fails. On success the
// wrapped carrier runs with nothing but a disarmed guard around it.
//
// # Layers
//
// Every Context call adds one layer on top of the previous error:
//
//	loading config: parsing line 3: unexpected '}'
//
// Layers keep their own message, ordered key/value fields and optional code.
// CodeVal falls back to the nearest inner layer that has one. The innermost
// layer records a stack (see XGX_CARRIER_CAPTURE_STACKS and
// XGX_CARRIER_STACK_DEPTH); outer layers reuse it rather than capturing again.
//
// # Formatting
//
//   - %v, %s   the one-line Error()
//   - %+v      code, message, fields, cause (recursively with %+v), stack
//   - %q       quoted Error()
//
// errors.Is and errors.As traverse layers through Unwrap. Non-error payloads
// (a string error type, say) become the innermost cause and stay reachable
// through Payload.
package ctxerr
