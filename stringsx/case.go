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

package stringsx

import (
	"unicode"
	"unicode/utf8"
)

// UpperInitial returns s with its first rune converted to upper case.
// The empty string is returned unchanged.
func UpperInitial(s string) string {
	return mapInitial(s, unicode.ToUpper)
}

// LowerInitial returns s with its first rune converted to lower case.
// The empty string is returned unchanged.
func LowerInitial(s string) string {
	return mapInitial(s, unicode.ToLower)
}

// mapInitial applies f to the first rune of s. Invalid UTF-8 at the start of
// the string is left untouched.
func mapInitial(s string, f func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	mapped := f(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}
