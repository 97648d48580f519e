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

package errorsx

import (
	"dirpx.dev/errorsx/details"
	"dirpx.dev/errorsx/stack"
	"dirpx.dev/errorsx/uuidx"
)

// Builder accumulates the fields of an Error and produces the finished,
// immutable value with Build.
//
// A Builder is a transient, single-use accumulator:
//
//   - it is not safe for concurrent use (build your error on one goroutine,
//     then share the result);
//   - it is consumed by Build — any use after Build is a programmer error
//     and panics (the same stance the rest of dirpx takes on misuse, cf.
//     MustGet in the details package).
//
// All With* methods return the receiver for chaining. Repeat calls to a
// single-valued setter silently overwrite the previous value; only
// WithContext accumulates.
type Builder struct {
	message  string
	location stack.Location
	context  []string
	cause    error

	statusCode    int
	statusCodeSet bool

	status    optString
	reason    optString
	debug     optString
	requestID optString
	id        optString

	details details.Map

	// built flips when Build consumes the builder.
	built bool
}

// New starts a Builder for an error with the given message.
//
// The capture-site location is recorded here, at the New call site — not at
// Build time — so chaining With* calls across helper functions does not
// shift the reported origin.
func New(message string) *Builder {
	return &Builder{
		message:  message,
		location: stack.Caller(1),
		context:  []string{},
	}
}

// WithContext appends one entry to the context trail. Multiple calls
// accumulate; insertion order is preserved verbatim.
func (b *Builder) WithContext(text string) *Builder {
	b.checkUsable()
	b.context = append(b.context, text)
	return b
}

// WithSource sets the wrapped underlying error.
//
// At most one cause is retained: calling WithSource again replaces the
// previous cause silently. The stored error (and anything reachable from it)
// must be safe to read from other goroutines, since the finished Error will
// typically cross one.
func (b *Builder) WithSource(err error) *Builder {
	b.checkUsable()
	b.cause = err
	return b
}

// WithStatusCode sets the HTTP-style status code. An error built without one
// reports apis.DefaultStatusCode.
func (b *Builder) WithStatusCode(code int) *Builder {
	b.checkUsable()
	b.statusCode = code
	b.statusCodeSet = true
	return b
}

// WithStatus sets the human-oriented status text.
func (b *Builder) WithStatus(text string) *Builder {
	b.checkUsable()
	b.status = optString{val: text, set: true}
	return b
}

// WithReason sets the machine-usable reason marker.
func (b *Builder) WithReason(text string) *Builder {
	b.checkUsable()
	b.reason = optString{val: text, set: true}
	return b
}

// WithDebug sets the internal diagnostic text.
func (b *Builder) WithDebug(text string) *Builder {
	b.checkUsable()
	b.debug = optString{val: text, set: true}
	return b
}

// WithRequestID correlates the error with the request during which it
// occurred.
func (b *Builder) WithRequestID(id string) *Builder {
	b.checkUsable()
	b.requestID = optString{val: id, set: true}
	return b
}

// WithID sets the error occurrence's own unique identifier.
func (b *Builder) WithID(id string) *Builder {
	b.checkUsable()
	b.id = optString{val: id, set: true}
	return b
}

// WithNewID assigns a freshly generated UUID v4 as the error's identifier.
func (b *Builder) WithNewID() *Builder {
	return b.WithID(uuidx.New())
}

// WithDetail adds a single key/value to the details map. Values stored here
// are read back through details.Get with the exact dynamic type.
func (b *Builder) WithDetail(key string, val any) *Builder {
	b.checkUsable()
	b.details = b.details.With(key, val)
	return b
}

// WithDetails merges the provided map into the details map, replacing any
// previously attached entries on key conflicts. The input map is copied, so
// the caller keeps ownership of it.
func (b *Builder) WithDetails(kv map[string]any) *Builder {
	b.checkUsable()
	b.details = b.details.Merge(kv)
	return b
}

// Build finalizes the builder and returns the immutable Error.
//
// The backtrace snapshot is captured here, exactly once, reflecting the call
// stack at this instant. Build cannot fail; it consumes the builder, and any
// further use of it panics.
func (b *Builder) Build() *Error {
	b.checkUsable()
	b.built = true

	return &Error{
		message:       b.message,
		location:      b.location,
		trace:         stack.Capture(1),
		context:       b.context,
		cause:         b.cause,
		statusCode:    b.statusCode,
		statusCodeSet: b.statusCodeSet,
		status:        b.status,
		reason:        b.reason,
		debug:         b.debug,
		requestID:     b.requestID,
		id:            b.id,
		details:       b.details,
	}
}

// checkUsable panics when the builder has already been consumed by Build.
func (b *Builder) checkUsable() {
	if b.built {
		panic("errorsx: builder used after Build")
	}
}
