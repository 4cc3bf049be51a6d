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

// Getter reads a computed slot value from an aggregate view.
type Getter func(obj map[string]any) any

// Setter stores a slot value through an accessor on an aggregate view.
type Setter func(obj map[string]any, v any)

// Descriptor describes how a single named slot of an aggregate may be read
// and written. Exactly one descriptor is active for a given (object, name)
// pair: the first one found walking the chain from the most-derived level
// toward the terminal root.
type Descriptor struct {
	// Name is the slot name the descriptor applies to.
	Name string
	// Writable reports whether the slot may be assigned directly as data.
	Writable bool
	// Get, when non-nil, computes the slot value (getter-backed slot).
	Get Getter
	// Set, when non-nil, stores the slot value (setter-backed slot).
	Set Setter
	// Level is the chain depth at which the descriptor was found.
	// Level 0 is the instance's own stored slots; registered chain levels
	// follow at 1..n. Filled in by the Reflector on lookup.
	Level int
}

// Accessor reports whether the slot resolves through a getter.
func (d Descriptor) Accessor() bool { return d.Get != nil }

// Assignable reports whether assignment to the slot has a defined path,
// either as direct data or through a setter.
func (d Descriptor) Assignable() bool { return d.Writable || d.Set != nil }

// Level is one definition level in a property chain. A level contributes
// named slot descriptors; it does not hold slot values (values live on the
// instance or behind getters).
type Level struct {
	// Name identifies the level for diagnostics (e.g. "base", "audited").
	Name string
	// Slots are the descriptors this level contributes, in declaration order.
	Slots []Descriptor
}

// Chain is the ordered list of definition levels for an aggregate kind,
// most-derived first. The end of the slice is the terminal root: it
// contributes no semantic properties and stops traversal. A nil Chain is a
// bare aggregate with no declared model.
type Chain []Level
