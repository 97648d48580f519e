/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errorsx provides an enriched error value for dirpx services: an
// immutable wrapper that combines a message with the capture-site location,
// a stack backtrace, an ordered context trail, an optional wrapped cause and
// optional classification fields (status code, status text, reason, debug
// text, request id, unique id, details map).
//
// Construction goes through a single-use Builder:
//
//	err := errorsx.New("failed to process file").
//	    WithContext("processing user upload").
//	    WithSource(ioErr).
//	    Build()
//
// or through the option-based convenience constructor:
//
//	err := errorsx.E("failed to process file",
//	    errorsx.WithStatusCodeOption(404),
//	    errorsx.WithSourceOption(ioErr),
//	)
//
// The finished *Error is immutable: every accessor returns the same result
// on every call, reference-typed state is copied on the way out, and there
// is no setter. That is what makes a built error safe to hand to another
// goroutine — provided the wrapped cause and any details-map payloads are
// themselves safe to read concurrently, which is the caller's contract.
//
// Downstream consumers either treat the value as a plain error (message,
// Unwrap chain, RootCause) or query individual metadata fields through the
// capability interfaces in dirpx.dev/errorsx/apis.
package errorsx

import (
	"fmt"

	"dirpx.dev/errorsx/apis"
	"dirpx.dev/errorsx/details"
	"dirpx.dev/errorsx/stack"
)

// Error is the enriched, immutable error value produced by a Builder.
//
// All fields are unexported and set exactly once, before the value is
// released by Build. The zero value is not useful; always construct through
// New(...).Build() or E(...).
type Error struct {
	// message is the primary human-readable description.
	message string

	// location is the source position of the New call that started the
	// builder. Always populated.
	location stack.Location

	// trace is the backtrace snapshot taken inside Build. Always populated.
	trace stack.Trace

	// context is the ordered annotation trail, in insertion order.
	context []string

	// cause is the wrapped underlying error, nil when nothing was wrapped.
	cause error

	// statusCode and statusCodeSet record the optional HTTP-style code.
	// Readers observe DefaultStatusCode when unset.
	statusCode    int
	statusCodeSet bool

	// Optional string classification fields. Each tracks set-ness
	// separately so that "" stays distinguishable from "never set".
	status    optString
	reason    optString
	debug     optString
	requestID optString
	id        optString

	// details is the optional heterogeneous side channel.
	details details.Map
}

// optString is a string that knows whether it was ever assigned.
type optString struct {
	val string
	set bool
}

// Compile-time guarantees that *Error satisfies every capability contract
// in apis, so presentation code can probe it without knowing this type.
var (
	_ apis.StatusCodedError = (*Error)(nil)
	_ apis.StatusedError    = (*Error)(nil)
	_ apis.ReasonedError    = (*Error)(nil)
	_ apis.DebuggedError    = (*Error)(nil)
	_ apis.RequestIDError   = (*Error)(nil)
	_ apis.IdentifiedError  = (*Error)(nil)
	_ apis.DetailedError    = (*Error)(nil)
	_ apis.CausedError      = (*Error)(nil)
	_ fmt.Formatter         = (*Error)(nil)
)

// Error implements the built-in error interface.
//
// The format is:
//
//	<message>
//
// or, when a cause is present:
//
//	<message>: <cause>
//
// The verbose diagnostic block (location, context trail, backtrace) is
// rendered by %+v; see Format.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the stored message verbatim, without the cause suffix that
// Error() appends.
func (e *Error) Message() string { return e.message }

// Context returns a copy of the annotation trail, insertion order preserved.
// The copy is the caller's to mutate; the error itself never changes. An
// error built without context reports an empty (non-nil) slice.
func (e *Error) Context() []string {
	out := make([]string, len(e.context))
	copy(out, e.context)
	return out
}

// Location returns the source position of the New call that created this
// error's builder.
func (e *Error) Location() stack.Location { return e.location }

// Trace returns a copy of the backtrace snapshot captured by Build. The
// frames reflect the call stack at build time, never at inspection time.
func (e *Error) Trace() stack.Trace { return e.trace.Clone() }

// Unwrap returns the wrapped cause, enabling errors.Is / errors.As chains
// and RootCause traversal. It returns nil when nothing was wrapped.
func (e *Error) Unwrap() error { return e.cause }

// Cause implements apis.CausedError. It is identical to Unwrap.
func (e *Error) Cause() error { return e.cause }

// StatusCode implements apis.StatusCodedError.
//
// It returns the code set on the builder, or apis.DefaultStatusCode (500)
// when none was set. Readers never observe an "unset" marker for the code.
func (e *Error) StatusCode() int {
	if !e.statusCodeSet {
		return apis.DefaultStatusCode
	}
	return e.statusCode
}

// Status implements apis.StatusedError.
func (e *Error) Status() (string, bool) { return e.status.val, e.status.set }

// Reason implements apis.ReasonedError.
func (e *Error) Reason() (string, bool) { return e.reason.val, e.reason.set }

// Debug implements apis.DebuggedError.
func (e *Error) Debug() (string, bool) { return e.debug.val, e.debug.set }

// RequestID implements apis.RequestIDError.
func (e *Error) RequestID() (string, bool) { return e.requestID.val, e.requestID.set }

// ID implements apis.IdentifiedError.
func (e *Error) ID() (string, bool) { return e.id.val, e.id.set }

// Details implements apis.DetailedError.
//
// The returned map is a copy: callers may mutate it freely without affecting
// the error. It returns nil when no details were attached.
func (e *Error) Details() details.Map { return e.details.Clone() }
