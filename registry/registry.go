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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/deepx/apis"
	"dirpx.dev/deepx/config"
	uref "dirpx.dev/deepx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("deepx(registry): nil reflect.Type provided")
	// ErrEmptyChain is returned when an empty chain is provided.
	ErrEmptyChain = errors.New("deepx(registry): empty chain provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type that already has a chain. Chains contain funcs and are not
	// comparable, so every re-registration is treated as a conflict.
	ErrConflictingRegistration = errors.New("deepx(registry): conflicting model registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to its property chain.
	m sync.Map // map[reflect.Type]apis.Chain
	// count tracks the number of registered entries.
	count int
}

// Register associates the normalized aggregate type of t with the given chain.
func (r *registry) Register(t reflect.Type, chain apis.Chain) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if len(chain) == 0 {
		return ErrEmptyChain
	}

	// Normalize to the base aggregate type according to r.cfg.
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err // ErrReflectNotAggregate (or ErrReflectNilType if somehow nil sneaks in)
	}

	// Fast read path: conflict check without locking.
	if _, ok := r.m.Load(b); ok {
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(b); ok {
		return ErrConflictingRegistration
	}

	r.m.Store(b, chain)
	r.count++
	return nil
}

// Lookup returns the chain for a type if present.
func (r *registry) Lookup(t reflect.Type) (apis.Chain, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.Chain), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Chain: value.(apis.Chain),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
