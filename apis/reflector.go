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

package apis

import (
	"reflect"
)

// Reflector coordinates strategies to answer property-model questions about
// aggregates: which slots exist, how each slot may be read and written, and
// which slots reject assignment. Typical strategy chain:
// ChainedStrategy -> RegistryStrategy -> BareStrategy.
type Reflector interface {
	// ChainOf returns the property chain for v, or nil for a bare aggregate.
	ChainOf(v any, cfg Config) Chain

	// ChainOfType returns the property chain for t, or nil if none applies.
	ChainOfType(t reflect.Type, cfg Config) Chain

	// Enumerate returns slot names reachable from v's own slots and chain,
	// most-derived first, deduplicated by first occurrence. Slots holding a
	// live func value are always excluded. Accessor-only slots are gated by
	// includeAccessors; data slots by includeData.
	Enumerate(v any, includeData, includeAccessors bool, cfg Config) []string

	// Describe returns the active descriptor for (v, name): the instance's
	// own slot if stored, else the first match walking the chain. The second
	// result is false when the terminal root is reached without a match.
	Describe(v any, name string, cfg Config) (Descriptor, bool)

	// Unwritable returns the set of slot names across v's chain whose active
	// descriptor is neither directly writable nor setter-backed.
	Unwritable(v any, cfg Config) map[string]struct{}

	// Read returns the value of the named slot: the stored value if present,
	// else the first getter along the chain. ok is false when the slot has
	// no readable value.
	Read(v any, name string, cfg Config) (val any, ok bool)

	// Write assigns the named slot honoring the active descriptor: setter if
	// declared, direct store if writable or undeclared. Returns false when
	// the slot rejects assignment.
	Write(v any, name string, val any, cfg Config) bool
}
