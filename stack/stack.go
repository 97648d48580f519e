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
	"runtime"
	"strconv"
	"strings"
)

// Frame is a single resolved call site within a Trace.
type Frame struct {
	// PC is the program counter of the call return.
	PC uintptr

	// File is the absolute file path as provided by the runtime.
	File string

	// Line is the line number within File.
	Line int

	// Function is the fully-qualified function name (pkg.Func or method).
	Function string
}

// Trace is a snapshot of call frames, most recent call first.
//
// A Trace is captured once and then treated as immutable. Callers that need
// to hand the trace out of a struct should use Clone to keep the original
// snapshot unshared.
type Trace []Frame

// MaxDepth bounds the number of frames a single Capture records.
//
// 64 frames is enough to locate the failing call chain in any realistic
// service while keeping capture cost bounded on exceptional paths.
const MaxDepth = 64

// Capture records the current goroutine's stack, skipping 'skip' frames
// above the caller of Capture. skip = 0 starts the trace at the immediate
// caller.
//
// Frames are resolved through runtime.CallersFrames rather than
// runtime.FuncForPC so that inlined calls appear as distinct frames.
func Capture(skip int) Trace {
	// Skip accounting:
	//   +1 runtime.Callers itself
	//   +1 Capture
	pc := make([]uintptr, MaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Trace, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// Clone returns an independent copy of the trace. A nil trace clones to nil.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	out := make(Trace, len(t))
	copy(out, t)
	return out
}

// String renders the trace one frame per line, indented by a single space,
// most recent call first:
//
//	pkg.Func file.go:123
//	pkg.Other other.go:45
//
// The leading space keeps frames visually subordinate to the "Source:" label
// in the verbose error format.
func (t Trace) String() string {
	if len(t) == 0 {
		return ""
	}
	var b strings.Builder
	for i, fr := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(' ')
		b.WriteString(fr.Function)
		b.WriteByte(' ')
		b.WriteString(fr.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(fr.Line))
	}
	return b.String()
}
