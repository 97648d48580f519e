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

// Package stack provides call-site and backtrace capture for errorsx.
//
// Two snapshot kinds live here:
//
//   - Location: a single (file, line) pair identifying the construction site
//     of an error. Cheap to capture (one runtime.Caller call), always taken
//     at builder creation time.
//   - Trace: a bounded slice of resolved call frames, captured once at build
//     finalization via runtime.Callers + runtime.CallersFrames so that
//     inlined calls are expanded correctly.
//
// Both are plain value types with no hidden state: once captured they never
// change, which is what makes the enclosing error safe to hand to another
// goroutine without synchronization.
//
// Capture is never repeated lazily. A trace rendered at display time always
// reflects the stack as it was when the error was built, not the (usually
// unrelated) stack of whoever happens to be printing it.
package stack
