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

// ErrorView is a flat, in-process snapshot of an error's enriched metadata.
//
// This is *not* the concrete error type used internally — it is the shape
// that presentation code (log decorators, error reporters, test assertions)
// can consume without knowing which capability traits the original error
// implemented. Keeping it here allows every adapter to share one struct.
//
// A view is a plain value: assembling it performs the trait probing once, so
// the consumer no longer deals with (value, ok) pairs. Absent string fields
// are empty in the view; StatusCode is always populated (the probe's default
// policy guarantees a concrete code).
type ErrorView struct {
	// Message is the error's primary human-readable description.
	Message string

	// StatusCode is the HTTP-style status code, DefaultStatusCode when the
	// error carried none.
	StatusCode int

	// Status is the human-oriented status text. Adapters typically coalesce
	// this with a standard text derived from StatusCode.
	Status string

	// Reason is the machine-usable reason marker, empty when absent.
	Reason string

	// Debug is internal diagnostic text, empty when absent.
	Debug string

	// RequestID correlates the error with the request during which it
	// occurred, empty when absent.
	RequestID string

	// ID is the error occurrence's own unique identifier, empty when absent.
	ID string

	// Context is the ordered annotation trail, nil when the error carries
	// none (foreign error types usually do not).
	Context []string

	// Details is a copy of the attached details map, nil when absent.
	Details details.Map

	// Cause is the rendered message of the direct cause, empty when the
	// error wraps nothing.
	Cause string
}
