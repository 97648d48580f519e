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

import (
	"fmt"
	"io"
	"strings"
)

// Format implements fmt.Formatter.
//
// Verbs:
//
//	%s, %v   concise one-line string, identical to Error().
//	%q       quoted concise string.
//	%+v      the full diagnostic block:
//
//	    Location: (at: <file>, line_no: <line>),
//	    Context: <entry1>,<entry2>
//	    Source:
//	     <function> <file>:<line>
//	     ...
//
// The block layout is fixed: an explicit "Location:" line, the context trail
// joined by commas, and the backtrace under "Source:". The frames printed
// are the snapshot captured by Build — the stack at display time plays no
// part in the output.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// formatVerbose writes the labeled diagnostic block.
func (e *Error) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Location: %s,\nContext: %s\nSource:\n%s",
		e.location, strings.Join(e.context, ","), e.trace)
}
