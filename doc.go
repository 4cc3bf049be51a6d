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

// Package deepx is a toolkit for manipulating structured, nested key-value
// aggregates at runtime: deep cloning, recursive merging (two policies),
// recursive diffing, and property reflection/assignment that respects
// per-slot write permissions discovered along a chain of property
// definitions.
//
// # Data model
//
// deepx works on three shapes, classified once per node by object.KindOf:
//
//   - Aggregate: any value with underlying type map[string]any, including
//     named map types ("aggregate kinds"). Named kinds can carry methods,
//     which is how values opt into capabilities.
//   - Sequence: any value with underlying type []any.
//   - Scalar: everything else. Func values are a fourth tag (Callable) that
//     property enumeration and projection always exclude.
//
// An aggregate kind may have a property chain: an ordered list of definition
// levels, most-derived first, each contributing slot descriptors (writable,
// getter-backed, setter-backed). The live instance is always level 0 of its
// own chain: stored slots are plain writable data and mask same-named
// declarations below. The end of the chain is the terminal root; it
// contributes nothing.
//
// # Design
//
// The core of deepx is a read-mostly global snapshot (state). The snapshot
// holds:
//
//   - Config: knobs that bound the recursive algorithms (recursion depth,
//     type unwrapping, the default projection filter).
//
//   - Registry: a process-wide mapping from aggregate kinds (named map
//     types) to property chains. This is how a binary declares, once, which
//     slots of "routing.policy" or "cache.entry" style aggregates are
//     read-only or accessor-backed. The registry can be written to at
//     runtime (RegisterModel).
//
//   - Reflector: a read-only object answering property-model questions:
//     which slots an aggregate exposes, a slot's active descriptor, and the
//     set of unwritable slots. The reflector tries strategies in priority
//     order:
//     1. If the value implements capability.Chained, use its PropertyChain.
//     2. If the kind is found in the Registry, use the registered chain.
//     3. Otherwise the value is a bare aggregate with no chain.
//
//   - Engine: the recursive algorithms (Clone, Merge, MergeSafe, Changes,
//     Assign, Project) bound to the snapshot's Config and Reflector.
//
//   - Builder: a pluggable factory that constructs Registry and Reflector
//     for a given Config (and optional extension data), allowed to migrate
//     state from previous instances.
//
// Readers load the current snapshot atomically and never mutate it; writers
// build a brand-new snapshot under a build mutex and swap it in. Lookups and
// algorithm calls are therefore lock-free on the hot path:
//
//	copy, err := deepx.Clone(cfgTree)
//	err = deepx.Merge(dst, patch)
//	diff, err := deepx.Changes(edited, saved)
//
// # Algorithms
//
// Clone deep-copies an aggregate; a value implementing capability.Cloneable
// overrides structural copying for its subtree. CloneWithAncestry produces a
// copy of the same kind as its source and honors the destination's write
// permissions.
//
// Merge overwrites; MergeSafe only fills gaps and protects explicit nils;
// MergeSequences concatenates with dedup against the left side. Shape
// mismatches never fail: slots with no defined copy path are skipped
// silently.
//
// Changes produces a one-sided minimal diff with falsy-equality (nil, false,
// "", numeric zero and NaN are mutually "no change") and index-wise sequence
// walking.
//
// Assign, AssignOwn and Project copy and flatten aggregates under the
// destination's (or object's own) writability rules; Project consults the
// capability.Projectable hook per value.
//
// None of the algorithms detect cycles. A cyclic aggregate fails with
// object.ErrDepthExceeded once recursion passes Config.MaxDepth; it never
// hangs or exhausts the stack silently.
//
// # Concurrency model
//
// Reads (Clone, Merge, Changes, Enumerate, ...) are wait-free with respect
// to the snapshot: they load the current state atomically. The algorithms
// themselves are safe for concurrent use on disjoint aggregates; two
// goroutines mutating the same destination must be serialized by the
// caller — the library performs no per-aggregate locking.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetReflector, ...)
// take a short build mutex, assemble a new state, and publish it via an
// atomic pointer swap.
//
// # Pinning
//
// SetRegistry and SetReflector pin their layer: a pinned layer is no longer
// rebuilt automatically by later SetConfig/SetBuilder/SetExt calls until the
// matching Unpin is called. Pinning exists for advanced scenarios where one
// layer is under full manual control while the rest of the snapshot evolves.
//
// # Usage pattern in a binary
//
//  1. Let deepx init with the default builder/config.
//
//  2. Optionally register models for well-known aggregate kinds up front:
//
//     deepx.RegisterModel(reflect.TypeOf(policy{}), policyChain)
//
//  3. Use deepx.Clone / Merge / Changes / Project everywhere nested
//     configuration or state trees are copied, combined, or compared.
//
//  4. In tests, call deepx.SetAll(...) to get deterministic snapshots and to
//     inject a mock Builder.
//
// # Scope
//
// deepx is intentionally small. It is not a schema or validation system, it
// defines no wire encoding, and it does not try to break reference cycles.
// Everything beyond copying, combining, comparing, and reflecting nested
// aggregates belongs to higher layers.
package deepx
