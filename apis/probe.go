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

import (
	"net/http"

	"dirpx.dev/errorsx/details"
)

// DefaultStatusCode is the status code observed on errors that carry no
// explicit one. 500 is the conservative choice: an unclassified failure is a
// server-side failure until somebody says otherwise.
const DefaultStatusCode = http.StatusInternalServerError

// StatusCodeOf returns the status code of err.
//
// If err implements StatusCodedError its own code is returned; any other
// error (including nil) reports DefaultStatusCode. This makes the probe safe
// to call on arbitrary error values at presentation boundaries.
func StatusCodeOf(err error) int {
	if sc, ok := err.(StatusCodedError); ok {
		return sc.StatusCode()
	}
	return DefaultStatusCode
}

// StatusOf returns the status text of err, if it carries one.
func StatusOf(err error) (string, bool) {
	if se, ok := err.(StatusedError); ok {
		return se.Status()
	}
	return "", false
}

// ReasonOf returns the reason marker of err, if it carries one.
func ReasonOf(err error) (string, bool) {
	if re, ok := err.(ReasonedError); ok {
		return re.Reason()
	}
	return "", false
}

// DebugOf returns the debug text of err, if it carries one.
func DebugOf(err error) (string, bool) {
	if de, ok := err.(DebuggedError); ok {
		return de.Debug()
	}
	return "", false
}

// RequestIDOf returns the request correlation id of err, if it carries one.
func RequestIDOf(err error) (string, bool) {
	if re, ok := err.(RequestIDError); ok {
		return re.RequestID()
	}
	return "", false
}

// IDOf returns the unique identifier of err, if it carries one.
func IDOf(err error) (string, bool) {
	if ie, ok := err.(IdentifiedError); ok {
		return ie.ID()
	}
	return "", false
}

// DetailsOf returns the details map of err, or nil when err carries none.
// The returned map follows the DetailedError contract: safe for the caller
// to read and mutate.
func DetailsOf(err error) details.Map {
	if de, ok := err.(DetailedError); ok {
		return de.Details()
	}
	return nil
}

// CauseOf returns the direct cause of err.
//
// It prefers the explicit CausedError contract and falls back to the
// standard Unwrap() error method, so it works uniformly on errorsx errors,
// fmt.Errorf %w wrappers and third-party types. It returns nil when err has
// no cause (or is nil).
func CauseOf(err error) error {
	if ce, ok := err.(CausedError); ok {
		return ce.Cause()
	}
	if ue, ok := err.(interface{ Unwrap() error }); ok {
		return ue.Unwrap()
	}
	return nil
}
