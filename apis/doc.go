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

// Package apis defines the public Go-level contracts for errorsx metadata.
//
// The goal of this package is to provide *small, composable* interfaces that
// other packages can depend on without importing the concrete error
// implementation. Each interface advertises exactly one metadata field an
// error may carry: a status code, a request id, a reason, and so on. A value
// may implement any subset; presentation code queries whichever of these the
// value happens to support, typically through the XxxOf probe functions,
// which also encode the per-field default policy:
//
//   - StatusCodeOf falls back to DefaultStatusCode (500) when the error does
//     not carry a status code;
//   - string-valued probes report ("", false) rather than inventing an empty
//     string, so "nothing was set" stays distinguishable from "empty string
//     was set";
//   - DetailsOf reports nil when no details are attached.
//
// Concrete error types should implement these interfaces, but callers should
// not rely on the concrete types. This package must remain lightweight: it
// only contains interfaces, probe helpers and one small view type.
package apis
