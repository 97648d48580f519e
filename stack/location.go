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

package stack

import (
	"fmt"
	"runtime"
)

// Location identifies the source position where an error was constructed.
//
// It is captured exactly once, at builder creation, and is always populated:
// every errorsx error carries a capture site even when the runtime cannot
// resolve one (File is then "unknown" and Line is 0).
type Location struct {
	// File is the absolute file path as reported by the runtime.
	File string

	// Line is the 1-based line number within File.
	Line int
}

// unknownFile is used when the runtime cannot resolve the caller.
const unknownFile = "unknown"

// Caller captures the location of the caller 'skip' frames above the caller
// of Caller itself. skip = 0 therefore records the immediate caller.
//
// The +1 accounts for Caller's own frame, so that user code never has to
// reason about this package's internals.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: unknownFile}
	}
	return Location{File: file, Line: line}
}

// String renders the location in the canonical display form:
//
//	(at: <file>, line_no: <line>)
//
// This exact shape is part of the errorsx display contract and is relied on
// by the verbose error format.
func (l Location) String() string {
	return fmt.Sprintf("(at: %s, line_no: %d)", l.File, l.Line)
}
