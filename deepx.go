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

package deepx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/deepx/apis"
	"dirpx.dev/deepx/builder"
	"dirpx.dev/deepx/config"
	"dirpx.dev/deepx/object"
)

// init initializes the global deepx state.
func init() {
	cfg := config.DefaultConfig()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil, nil)
	ref := b.BuildReflector(cfg, reg, nil, nil)
	// Store the initial state atomically.
	st.Store(newState(cfg, nil, reg, ref, b, false, false))
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("deepx: builder returned nil registry")
	// ErrNilReflector is returned when a builder returns a nil reflector.
	ErrNilReflector = errors.New("deepx: builder returned nil reflector")
)

// Clone deep-copies src into a fresh bare aggregate using the global engine.
// This is a convenience wrapper around the global eng.
func Clone(src any) (map[string]any, error) {
	return st.Load().eng.Clone(src)
}

// CloneInto deep-copies src's slots into dst and returns dst.
// This is a convenience wrapper around the global eng.
func CloneInto(dst map[string]any, src any) (map[string]any, error) {
	return st.Load().eng.CloneInto(dst, src)
}

// CloneWithAncestry deep-copies src into a new empty instance of src's own
// kind, honoring the destination's write permissions.
// This is a convenience wrapper around the global eng.
func CloneWithAncestry(src any) (any, error) {
	return st.Load().eng.CloneWithAncestry(src)
}

// CloneWithAncestryInto is CloneWithAncestry with a caller-supplied destination.
// This is a convenience wrapper around the global eng.
func CloneWithAncestryInto(dst, src any) (any, error) {
	return st.Load().eng.CloneWithAncestryInto(dst, src)
}

// Merge folds src into dst in place with overwrite semantics.
// This is a convenience wrapper around the global eng.
func Merge(dst, src map[string]any) error {
	return st.Load().eng.Merge(dst, src)
}

// MergeSafe folds src into dst in place without overwriting existing values.
// This is a convenience wrapper around the global eng.
func MergeSafe(dst, src map[string]any) error {
	return st.Load().eng.MergeSafe(dst, src)
}

// MergeSequences returns a new sequence of a's elements followed by b's
// elements not already present in a.
func MergeSequences(a, b []any) []any {
	return object.MergeSequences(a, b)
}

// MergeMarshal layers serialized documents left to right (earlier documents
// win) using the provided unmarshal/marshal functions.
// This is a convenience wrapper around the global eng.
func MergeMarshal(
	unmarshal func([]byte, any) error,
	marshal func(any) ([]byte, error),
	docs ...[]byte,
) ([]byte, error) {
	return st.Load().eng.MergeMarshal(unmarshal, marshal, docs...)
}

// Changes computes the one-sided minimal diff of candidate against original.
// A nil result means no differences.
// This is a convenience wrapper around the global eng.
func Changes(candidate, original map[string]any) (map[string]any, error) {
	return st.Load().eng.Changes(candidate, original)
}

// Assign copies src's enumerable slots into dst, honoring dst's writability.
// This is a convenience wrapper around the global eng.
func Assign(dst, src any, exclude ...string) error {
	return st.Load().eng.Assign(dst, src, exclude...)
}

// AssignOwn copies src's own stored slots into dst's declared, assignable slots.
// This is a convenience wrapper around the global eng.
func AssignOwn(dst, src any, exclude ...string) error {
	return st.Load().eng.AssignOwn(dst, src, exclude...)
}

// Project builds a plain bare aggregate from obj for serialization.
// This is a convenience wrapper around the global eng.
func Project(obj any, opts ...object.ProjectOption) (map[string]any, error) {
	return st.Load().eng.Project(obj, opts...)
}

// Enumerate returns obj's slot names under the given filters using the
// global reflector and configuration.
func Enumerate(obj any, includeData, includeAccessors bool) []string {
	s := st.Load()
	return s.ref.Enumerate(obj, includeData, includeAccessors, s.cfg)
}

// Describe returns the active descriptor for (obj, name) using the global
// reflector and configuration.
func Describe(obj any, name string) (apis.Descriptor, bool) {
	s := st.Load()
	return s.ref.Describe(obj, name, s.cfg)
}

// Unwritable returns the set of obj's slot names that reject assignment,
// using the global reflector and configuration.
func Unwritable(obj any) map[string]struct{} {
	s := st.Load()
	return s.ref.Unwritable(obj, s.cfg)
}

// RegisterModel adds a type-chain mapping to the global model registry.
// This is a convenience wrapper around the global reg.
func RegisterModel(t reflect.Type, chain apis.Chain) error {
	return st.Load().reg.Register(t, chain)
}

// Engine returns the global deepx eng bound to the current snapshot.
func Engine() *object.Engine {
	return st.Load().eng
}

// SetAll explicitly sets all global deepx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, ref apis.Reflector, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Reflector
	nref := ref
	npref := false
	if nref == nil {
		nref = nbld.BuildReflector(ncfg, nreg, old.ref, next)
	} else {
		npref = true
	}

	// Ensure non-nil reg and ref.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nref == nil {
		panic(ErrNilReflector)
	}

	// Store the new state atomically.
	st.Store(newState(ncfg, next, nreg, nref, nbld, npreg, npref))
}

// Config returns the global deepx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global deepx configuration to cfg.
// It rebuilds the global reg and ref using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and ref based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nref := old.ref
	if !old.pref {
		nref = b.BuildReflector(cfg, nreg, old.ref, old.ext)
	}

	// Ensure non-nil reg and ref.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nref == nil {
		panic(ErrNilReflector)
	}

	// Store the new state atomically.
	st.Store(newState(cfg, old.ext, nreg, nref, b, old.preg, old.pref))
}

// Registry returns the global deepx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global deepx reg to reg.
// It uses the global deepx configuration to rebuild the global ref.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new ref based on the old cfg and new reg.
	nref := old.ref
	if !old.pref {
		nref = b.BuildReflector(old.cfg, reg, old.ref, old.ext)
	}

	// Ensure non-nil ref.
	if nref == nil {
		panic(ErrNilReflector)
	}

	// Store the new state atomically.
	st.Store(newState(old.cfg, old.ext, reg, nref, b, true, old.pref))
}

// Reflector returns the global deepx ref.
func Reflector() apis.Reflector {
	return st.Load().ref
}

// SetReflector sets the global deepx ref to ref.
// It uses the global deepx configuration and reg.
// This is a convenience wrapper around the global state.
func SetReflector(ref apis.Reflector) {
	if ref == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(newState(old.cfg, old.ext, old.reg, ref, old.bld, old.preg, true))
}

// Builder returns the global deepx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global deepx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and ref based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nref := old.ref
	if !old.pref {
		nref = b.BuildReflector(old.cfg, nreg, old.ref, old.ext)
	}

	// Ensure non-nil reg and ref.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nref == nil {
		panic(ErrNilReflector)
	}

	// Store the new state atomically.
	st.Store(newState(old.cfg, old.ext, nreg, nref, b, old.preg, old.pref))
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and ref based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nref := old.ref
	if !old.pref {
		nref = b.BuildReflector(old.cfg, nreg, old.ref, ext)
	}

	// Ensure non-nil reg and ref.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nref == nil {
		panic(ErrNilReflector)
	}

	// Store the new state atomically.
	st.Store(newState(old.cfg, ext, nreg, nref, b, old.preg, old.pref))
}

// ExtAs returns the global deepx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global deepx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global deepx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(old.cfg, old.ext, old.reg, old.ref, old.bld, true, old.pref))
}

// UnpinRegistry makes the global deepx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(old.cfg, old.ext, old.reg, old.ref, old.bld, false, old.pref))
}

// IsReflectorPinned returns whether the global deepx ref is pinned (immutable).
func IsReflectorPinned() bool {
	return st.Load().pref
}

// PinReflector makes the global deepx ref immutable.
func PinReflector() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(old.cfg, old.ext, old.reg, old.ref, old.bld, old.preg, true))
}

// UnpinReflector makes the global deepx ref mutable again.
func UnpinReflector() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(old.cfg, old.ext, old.reg, old.ref, old.bld, old.preg, false))
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global deepx state.
var st atomic.Pointer[state]

// newState assembles an immutable snapshot, deriving the engine from the
// configuration and reflector so every published state carries a consistent
// algorithm surface.
func newState(cfg apis.Config, ext any, reg apis.Registry, ref apis.Reflector, bld apis.Builder, preg, pref bool) *state {
	return &state{
		cfg:  cfg,
		ext:  ext,
		reg:  reg,
		ref:  ref,
		eng:  object.New(cfg, ref),
		bld:  bld,
		preg: preg,
		pref: pref,
	}
}

// state is the global deepx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global deepx configuration.
	cfg apis.Config
	// ext is the global deepx extension configuration.
	ext any
	// reg is the global deepx model registry.
	reg apis.Registry
	// ref is the global deepx reflector.
	ref apis.Reflector
	// eng is the algorithm engine derived from cfg and ref.
	eng *object.Engine
	// bld is the global deepx builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pref indicates whether the ref is pinned (immutable).
	pref bool
}
