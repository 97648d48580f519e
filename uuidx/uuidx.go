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

// Package uuidx generates RFC 4122 version 4 (random) identifiers. It wraps
// github.com/google/uuid behind a minimal surface so that callers — most
// notably Builder.WithNewID — do not depend on the uuid package directly.
package uuidx

import "github.com/google/uuid"

// New returns the string form of a freshly generated UUID v4.
func New() string {
	return uuid.NewString()
}

// NewUUID returns a freshly generated UUID v4 value for callers that need
// the structured form rather than a string.
func NewUUID() uuid.UUID {
	return uuid.New()
}
