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

// Package details provides the heterogeneous, string-keyed side channel that
// errorsx errors carry next to their classification fields.
//
// A details.Map stores arbitrary typed payloads. The concrete type of each
// value is known only to the writer; readers recover it through the
// type-checked Get[T] accessor, which reports (zero, false) on a missing key
// or a mismatched dynamic type instead of panicking. There is no implicit
// conversion: the stored dynamic type must match T exactly.
//
// Maps follow the copy-on-write discipline of the rest of errorsx: With and
// Merge always return a new map and never alter their receiver, so a Map that
// has been attached to an error can be shared across goroutines freely.
package details
