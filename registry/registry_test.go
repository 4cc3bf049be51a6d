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

package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/deepx/apis"
	"dirpx.dev/deepx/config"
	"dirpx.dev/deepx/registry"
	uref "dirpx.dev/deepx/utils/reflect"
)

// chainFor builds a minimal one-level chain for tests.
func chainFor(level string, slots ...string) apis.Chain {
	ds := make([]apis.Descriptor, 0, len(slots))
	for _, s := range slots {
		ds = append(ds, apis.Descriptor{Name: s, Writable: true})
	}
	return apis.Chain{{Name: level, Slots: ds}}
}

func TestRegister_AndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	// pointer -> normalized kind = M1
	if err := reg.Register(reflect.TypeOf(&M1{}), chainFor("m1", "a")); err != nil {
		t.Fatalf("Register(&M1{}): unexpected error: %v", err)
	}

	// lookup by exact kind
	if c, ok := reg.Lookup(reflect.TypeOf(M1{})); !ok || len(c) != 1 || c[0].Name != "m1" {
		t.Fatalf("Lookup(M1{}): got (%v,%v), want the m1 chain", c, ok)
	}
	// lookup by pointer hits the same normalized kind
	if c, ok := reg.Lookup(reflect.TypeOf(&M1{})); !ok || len(c) != 1 || c[0].Name != "m1" {
		t.Fatalf("Lookup(&M1{}): got (%v,%v), want the m1 chain", c, ok)
	}

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register(reflect.TypeOf(M1{}), chainFor("m1", "a")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same normalized kind again -> conflict, even with an identical-looking chain.
	err := reg.Register(reflect.TypeOf(&M1{}), chainFor("m1", "a"))
	if !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register(nil, chainFor("x", "a")); !errors.Is(err, registry.ErrNilType) {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := reg.Register(reflect.TypeOf(M1{}), nil); !errors.Is(err, registry.ErrEmptyChain) {
		t.Fatalf("empty chain: want ErrEmptyChain, got %v", err)
	}
	// Non-aggregate kinds are rejected by normalization.
	if err := reg.Register(reflect.TypeOf(struct{}{}), chainFor("x", "a")); !errors.Is(err, uref.ErrReflectNotAggregate) {
		t.Fatalf("struct: want ErrReflectNotAggregate, got %v", err)
	}
}

func TestRegister_MaxUnwrapLimit(t *testing.T) {
	// MaxUnwrap = 1 so **M1 fails to reach the kind.
	cfg := config.DefaultConfig()
	cfg.MaxUnwrap = 1
	reg := registry.New(cfg)

	var x **M1
	if err := reg.Register(reflect.TypeOf(x), chainFor("m1", "a")); err == nil {
		t.Fatalf("MaxUnwrap=1: expected normalization error, got nil")
	}

	// With enough unwraps it succeeds.
	cfg2 := config.DefaultConfig()
	cfg2.MaxUnwrap = 8
	reg2 := registry.New(cfg2)
	if err := reg2.Register(reflect.TypeOf(x), chainFor("m1", "a")); err != nil {
		t.Fatalf("MaxUnwrap=8: unexpected error: %v", err)
	}
}

func TestEntriesAndReset(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	_ = reg.Register(reflect.TypeOf(M1{}), chainFor("m1", "a"))
	_ = reg.Register(reflect.TypeOf(M2{}), chainFor("m2", "b"))

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if c, ok := reg.Lookup(reflect.TypeOf(M1{})); ok || c != nil {
		t.Fatalf("Lookup after Reset: got (%v,%v), want (nil,false)", c, ok)
	}

	// Re-registration after Reset is allowed.
	if err := reg.Register(reflect.TypeOf(M1{}), chainFor("m1", "a", "b")); err != nil {
		t.Fatalf("re-register after Reset: unexpected error: %v", err)
	}
}

func TestLookupNilAndUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if c, ok := reg.Lookup(nil); ok || c != nil {
		t.Fatalf("Lookup(nil): got (%v,%v), want (nil,false)", c, ok)
	}
	if c, ok := reg.Lookup(reflect.TypeOf(M1{})); ok || c != nil {
		t.Fatalf("Lookup(unknown): got (%v,%v), want (nil,false)", c, ok)
	}
	if c, ok := reg.Lookup(reflect.TypeOf(1)); ok || c != nil {
		t.Fatalf("Lookup(non-aggregate): got (%v,%v), want (nil,false)", c, ok)
	}
}
