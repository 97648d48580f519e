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

package details

import "fmt"

// Map is a string-keyed collection of dynamically-typed values.
//
// The zero value (nil) is a valid, empty map. All modifying operations are
// copy-on-write: they leave the receiver untouched and return the modified
// copy. Values stored in a Map should themselves be safe to read from
// multiple goroutines — the Map never mutates them, but it also cannot make
// an inherently unsafe payload safe.
type Map map[string]any

// With returns a copy of m with one extra key/value. The receiver is never
// modified, so already-attached maps stay stable.
func (m Map) With(key string, val any) Map {
	out := make(Map, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = val
	return out
}

// Merge returns a copy of m with all entries of kv added, kv taking
// precedence on key conflicts. Merging an empty kv returns the receiver
// unchanged.
func (m Map) Merge(kv map[string]any) Map {
	if len(kv) == 0 {
		return m
	}
	out := make(Map, len(m)+len(kv))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range kv {
		out[k] = v
	}
	return out
}

// Clone returns an independent shallow copy of the map. A nil map clones to
// nil.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Get retrieves the value stored under key as a T.
//
// It returns (zero, false) when the map is nil, the key is absent, or the
// stored dynamic type is not exactly T. It never panics and never converts:
// a value stored as int is not visible as int64.
func Get[T any](m Map, key string) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	v, ok := m[key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is the panic-on-absence variant of Get.
//
// Use sparingly — it is intended for tests and for contexts where a missing
// or mistyped detail is a programming error rather than a runtime condition.
func MustGet[T any](m Map, key string) T {
	var zero T
	v, ok := m[key]
	if !ok {
		panic(fmt.Errorf("details: key %q missing (want %T)", key, zero))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("details: key %q has dynamic type %T, want %T", key, v, zero))
	}
	return tv
}
