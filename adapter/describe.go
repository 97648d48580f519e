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

// Package adapter converts arbitrary error values into the flat snapshot
// types defined in dirpx.dev/errorsx/apis.
//
// The conversion is driven entirely by the capability interfaces: any error
// that implements a subset of them contributes the fields it supports, and
// everything else falls back to the documented defaults. This package never
// serializes anything — it only assembles in-process values for loggers,
// reporters and tests.
package adapter

import (
	"net/http"

	"dirpx.dev/errorsx/apis"
	"dirpx.dev/errorsx/stringsx"
)

// contexter and messager are optional accessors implemented by
// errorsx.Error. They are probed structurally here to keep apis free of
// extra traits: message and trail belong to the generic read surface, not
// to the capability set.
type (
	contexter interface {
		Context() []string
	}
	messager interface {
		Message() string
	}
)

// Describe assembles an apis.ErrorView from err.
//
// Fields the error does not support are left at their documented defaults:
// the status code falls back to apis.DefaultStatusCode, string fields stay
// empty, Details stays nil. The Status field is coalesced with the standard
// HTTP status text for the resolved code, so a view always has a
// human-readable status. Describe performs no redaction or filtering;
// whatever the error exposes ends up in the view as-is.
//
// Describe(nil) returns the zero view.
func Describe(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}

	v := apis.ErrorView{
		Message:    err.Error(),
		StatusCode: apis.StatusCodeOf(err),
		Details:    apis.DetailsOf(err),
	}
	// Prefer the verbatim message over the composed Error() string when the
	// error distinguishes the two.
	if m, ok := err.(messager); ok {
		v.Message = m.Message()
	}

	if status, ok := apis.StatusOf(err); ok {
		v.Status = status
	}
	v.Status = stringsx.Coalesce(v.Status, http.StatusText(v.StatusCode))

	if reason, ok := apis.ReasonOf(err); ok {
		v.Reason = reason
	}
	if debug, ok := apis.DebugOf(err); ok {
		v.Debug = debug
	}
	if rid, ok := apis.RequestIDOf(err); ok {
		v.RequestID = rid
	}
	if id, ok := apis.IDOf(err); ok {
		v.ID = id
	}
	if c, ok := err.(contexter); ok {
		v.Context = c.Context()
	}
	if cause := apis.CauseOf(err); cause != nil {
		v.Cause = cause.Error()
	}
	return v
}
