/*
   Copyright 2025 The DIRPX Authors.

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

package capability

// Cloneable lets a value supply its own deep-copy operation.
//
// # Overview
//
// Cloneable is a duck-typed override for the structural cloning performed by
// the object engine. When a value stored in an aggregate implements
// Cloneable, the engine MUST delegate to CloneValue for that subtree and
// MUST NOT descend into it structurally. This is the escape hatch for values
// with internal invariants a generic map/slice walk cannot preserve
// (handles, interned data, values with private state).
//
// # Ownership contract
//
//   - The returned value MUST be safe for the caller to mutate without
//     affecting the receiver, unless the implementation deliberately returns
//     a shared immutable value — in that case the sharing is the
//     implementer's contract with its callers, not the engine's.
//   - CloneValue MUST NOT mutate the receiver.
//
// # Performance and side-effects
//
//   - Implementations MUST NOT perform blocking operations or I/O.
//   - Implementations MUST be safe to call from multiple goroutines
//     concurrently when the receiver itself is shared read-only.
//
// # Usage
//
//	type ticket map[string]any
//
//	func (t ticket) CloneValue() any {
//	    out := make(ticket, len(t))
//	    for k, v := range t {
//	        out[k] = v
//	    }
//	    return out
//	}
type Cloneable interface {
	// CloneValue returns an independent copy of the receiver.
	CloneValue() any
}
