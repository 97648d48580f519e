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

import "dirpx.dev/errorsx/stack"

// Option is a functional option for the E convenience constructor. Each
// option forwards to the corresponding Builder method, so E and an explicit
// builder chain produce identical errors.
type Option func(*Builder) *Builder

// E builds an Error in a single call.
//
// Usage:
//
//	return errorsx.E("storage is down",
//	    errorsx.WithStatusCodeOption(503),
//	    errorsx.WithSourceOption(err),
//	)
//
// The capture-site location reflects the E call site; the backtrace is
// captured once, when the underlying builder finalizes. Options are applied
// in order.
func E(message string, opts ...Option) *Error {
	b := &Builder{
		message:  message,
		location: stack.Caller(1),
		context:  []string{},
	}
	for _, opt := range opts {
		b = opt(b)
	}
	return b.Build()
}

// WithContextOption appends one context trail entry on construction.
func WithContextOption(text string) Option {
	return func(b *Builder) *Builder { return b.WithContext(text) }
}

// WithSourceOption attaches the wrapped cause on construction.
func WithSourceOption(err error) Option {
	return func(b *Builder) *Builder { return b.WithSource(err) }
}

// WithStatusCodeOption sets the HTTP-style status code on construction.
func WithStatusCodeOption(code int) Option {
	return func(b *Builder) *Builder { return b.WithStatusCode(code) }
}

// WithStatusOption sets the status text on construction.
func WithStatusOption(text string) Option {
	return func(b *Builder) *Builder { return b.WithStatus(text) }
}

// WithReasonOption sets the reason marker on construction.
func WithReasonOption(text string) Option {
	return func(b *Builder) *Builder { return b.WithReason(text) }
}

// WithDebugOption sets the debug text on construction.
func WithDebugOption(text string) Option {
	return func(b *Builder) *Builder { return b.WithDebug(text) }
}

// WithRequestIDOption sets the request correlation id on construction.
func WithRequestIDOption(id string) Option {
	return func(b *Builder) *Builder { return b.WithRequestID(id) }
}

// WithIDOption sets the error's unique identifier on construction.
func WithIDOption(id string) Option {
	return func(b *Builder) *Builder { return b.WithID(id) }
}

// WithNewIDOption assigns a fresh UUID v4 identifier on construction.
func WithNewIDOption() Option {
	return func(b *Builder) *Builder { return b.WithNewID() }
}

// WithDetailOption adds a single detail key/value on construction.
func WithDetailOption(k string, v any) Option {
	return func(b *Builder) *Builder { return b.WithDetail(k, v) }
}

// WithDetailsOption merges multiple detail key/values on construction.
func WithDetailsOption(kv map[string]any) Option {
	return func(b *Builder) *Builder { return b.WithDetails(kv) }
}
