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

import "errors"

// RootCause walks the cause chain of err and returns the deepest error: the
// one that reports no further source. If err wraps nothing, err itself is
// returned. RootCause(nil) is nil.
//
// Traversal follows the standard Unwrap() error link, so the chain may mix
// errorsx errors, fmt.Errorf %w wrappers and third-party types freely.
// RootCause never constructs new values; it only traverses.
//
// The chain is required to be acyclic. A cause chain that references one of
// its own ancestors makes RootCause loop forever; that is a contract
// violation by whoever assembled the chain, not a recoverable condition.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
