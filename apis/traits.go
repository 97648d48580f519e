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

package apis

import "dirpx.dev/errorsx/details"

// StatusCodedError represents an error that is classified with an HTTP-style
// numeric status code.
//
// Implementations return the code that was explicitly set on the error, or
// DefaultStatusCode when nothing was set. Because the default is a concrete,
// well-defined value, StatusCode never carries an "unset" marker — readers
// always observe a usable code.
type StatusCodedError interface {
	error

	// StatusCode returns the HTTP-style status code of the error.
	// When no code was set, implementations MUST return DefaultStatusCode.
	StatusCode() int
}

// StatusedError represents an error that carries a human-oriented status
// text, e.g. "Service Unavailable".
//
// Unlike the status code, the status text has no meaningful fallback, so the
// accessor reports whether a value was ever set. An empty status text that
// was explicitly set is reported as ("", true).
type StatusedError interface {
	error

	// Status returns the status text and whether one was set.
	Status() (string, bool)
}

// ReasonedError represents an error that provides a more specific,
// machine-usable reason marker in addition to its message, e.g.
// "storage.pg.connect_timeout".
type ReasonedError interface {
	error

	// Reason returns the reason marker and whether one was set.
	Reason() (string, bool)
}

// DebuggedError represents an error that carries a free-form debug string:
// internal diagnostic text that is useful in logs but not meant for end
// users.
type DebuggedError interface {
	error

	// Debug returns the debug text and whether one was set.
	Debug() (string, bool)
}

// RequestIDError represents an error that is correlated with the request
// during which it occurred.
type RequestIDError interface {
	error

	// RequestID returns the correlation id and whether one was set.
	RequestID() (string, bool)
}

// IdentifiedError represents an error that carries its own unique identifier,
// typically a UUID assigned at construction so that a single occurrence can
// be found again across systems.
type IdentifiedError interface {
	error

	// ID returns the error's unique identifier and whether one was set.
	ID() (string, bool)
}

// DetailedError represents an error that exposes a heterogeneous map of
// structured details.
//
// Implementations SHOULD return a map that is safe for the caller to read
// and mutate without affecting the error — i.e. a defensive copy. Returning
// nil is allowed and simply means "no details".
type DetailedError interface {
	error

	// Details returns the attached details map. May return nil.
	Details() details.Map
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis
// keeps the contract explicit for callers that want to talk about causes
// without reaching for errors.As / errors.Is.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
