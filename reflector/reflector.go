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

package reflector

import (
	"reflect"
	"sort"

	"dirpx.dev/deepx/apis"
	uref "dirpx.dev/deepx/utils/reflect"
)

// New constructs an apis.Reflector that tries the given strategies in order
// for chain discovery. Nil strategies are ignored. The returned reflector is
// safe for concurrent use provided strategies themselves are safe for
// concurrent TryChain calls.
func New(strategies ...apis.Strategy) apis.Reflector {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return reflector{strats: out}
}

// reflector is an immutable, order-preserving property model over a set of
// chain-discovery strategies. The live instance is always treated as the
// most-derived level (level 0): its stored slots are plain writable data
// descriptors that mask chain declarations of the same name.
type reflector struct {
	strats []apis.Strategy
}

// ChainOf runs strategies in order until one handles the value.
// Returns nil for a bare aggregate or an unhandled value.
func (r reflector) ChainOf(v any, cfg apis.Config) apis.Chain {
	for _, s := range r.strats {
		if c, ok := s.TryChain(v, cfg); ok {
			return c
		}
	}
	return nil
}

// ChainOfType runs strategies in order until one handles the type.
func (r reflector) ChainOfType(t reflect.Type, cfg apis.Config) apis.Chain {
	for _, s := range r.strats {
		if c, ok := s.TryChainType(t, cfg); ok {
			return c
		}
	}
	return nil
}

// Enumerate returns slot names walking v's own slots and chain, most-derived
// first, deduplicated by first occurrence. Own slot names are sorted so the
// level-0 portion of the result is deterministic; chain levels keep their
// declaration order. Slots holding a live func value are always excluded and
// still mask same-named chain declarations.
func (r reflector) Enumerate(v any, includeData, includeAccessors bool, cfg apis.Config) []string {
	m, ok := uref.Aggregate(v)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(m))
	var names []string

	own := make([]string, 0, len(m))
	for k := range m {
		own = append(own, k)
	}
	sort.Strings(own)
	for _, k := range own {
		seen[k] = struct{}{}
		if uref.Callable(m[k]) {
			continue
		}
		if includeData {
			names = append(names, k)
		}
	}

	for _, lvl := range r.ChainOf(v, cfg) {
		for _, d := range lvl.Slots {
			if _, dup := seen[d.Name]; dup {
				continue
			}
			seen[d.Name] = struct{}{}
			if d.Accessor() {
				if includeAccessors {
					names = append(names, d.Name)
				}
				continue
			}
			if includeData {
				names = append(names, d.Name)
			}
		}
	}
	return names
}

// Describe returns the active descriptor for (v, name). A stored slot on the
// instance wins as a writable data descriptor at level 0; otherwise the
// first chain match wins with its Level filled in. Not found => false.
func (r reflector) Describe(v any, name string, cfg apis.Config) (apis.Descriptor, bool) {
	m, ok := uref.Aggregate(v)
	if !ok {
		return apis.Descriptor{}, false
	}
	if _, own := m[name]; own {
		return apis.Descriptor{Name: name, Writable: true, Level: 0}, true
	}
	for i, lvl := range r.ChainOf(v, cfg) {
		for _, d := range lvl.Slots {
			if d.Name == name {
				d.Level = i + 1
				return d, true
			}
		}
	}
	return apis.Descriptor{}, false
}

// Unwritable returns the names whose active descriptor rejects assignment.
// Stored slots are always assignable, so only chain declarations not masked
// by a stored slot can contribute.
func (r reflector) Unwritable(v any, cfg apis.Config) map[string]struct{} {
	out := map[string]struct{}{}
	m, ok := uref.Aggregate(v)
	if !ok {
		return out
	}
	seen := make(map[string]struct{}, len(m))
	for k := range m {
		seen[k] = struct{}{}
	}
	for _, lvl := range r.ChainOf(v, cfg) {
		for _, d := range lvl.Slots {
			if _, dup := seen[d.Name]; dup {
				continue
			}
			seen[d.Name] = struct{}{}
			if !d.Assignable() {
				out[d.Name] = struct{}{}
			}
		}
	}
	return out
}

// Read returns the value of the named slot: the stored value if present,
// else the first getter along the chain. A chain data declaration carries no
// value of its own, so an unstored data slot reads as absent.
func (r reflector) Read(v any, name string, cfg apis.Config) (any, bool) {
	m, ok := uref.Aggregate(v)
	if !ok {
		return nil, false
	}
	if val, own := m[name]; own {
		return val, true
	}
	for _, lvl := range r.ChainOf(v, cfg) {
		for _, d := range lvl.Slots {
			if d.Name != name {
				continue
			}
			if d.Get != nil {
				return d.Get(m), true
			}
			return nil, false
		}
	}
	return nil, false
}

// Write assigns the named slot honoring the active descriptor: stored slots
// are overwritten in place, setter-backed slots go through the setter,
// writable declarations store directly, and undeclared names are created as
// plain data slots. Returns false when the active descriptor rejects
// assignment.
func (r reflector) Write(v any, name string, val any, cfg apis.Config) bool {
	m, ok := uref.Aggregate(v)
	if !ok {
		return false
	}
	if _, own := m[name]; own {
		m[name] = val
		return true
	}
	for _, lvl := range r.ChainOf(v, cfg) {
		for _, d := range lvl.Slots {
			if d.Name != name {
				continue
			}
			if d.Set != nil {
				d.Set(m, val)
				return true
			}
			if d.Writable {
				m[name] = val
				return true
			}
			return false
		}
	}
	m[name] = val
	return true
}
