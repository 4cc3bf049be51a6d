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

package object

import (
	"fmt"
	"reflect"

	uref "dirpx.dev/deepx/utils/reflect"
)

// Merge folds src into dst in place, slot by slot:
//
//   - sequence into sequence: dst gets MergeSequences(dst, src).
//   - single value into a sequence: appended unless an equal element is
//     already present.
//   - aggregate into aggregate: recursive Merge.
//   - scalar or callable: overwrites unconditionally, creating the slot if
//     absent.
//   - anything else (aggregate or sequence into an absent, scalar, or
//     mismatched slot): skipped silently. Tolerating heterogeneous inputs is
//     the contract; Merge never fails on a shape mismatch.
//
// The only error is ErrDepthExceeded, raised when recursion passes
// Config.MaxDepth (cyclic input).
func (e *Engine) Merge(dst, src map[string]any) error {
	return e.merge(dst, src, 0)
}

func (e *Engine) merge(dst, src map[string]any, depth int) error {
	if depth >= e.cfg.MaxDepth {
		return ErrDepthExceeded
	}
	for k, sv := range src {
		dv := dst[k]

		if dseq, ok := uref.Sequence(dv); ok {
			if sseq, ok := uref.Sequence(sv); ok {
				dst[k] = MergeSequences(dseq, sseq)
			} else if !containsValue(dseq, sv) {
				// Fresh copy: appending onto the shared view could write
				// into the original sequence's spare capacity.
				dst[k] = MergeSequences(dseq, []any{sv})
			}
			continue
		}

		if sm, ok := uref.Aggregate(sv); ok {
			if dm, ok := uref.Aggregate(dv); ok && dm != nil {
				if err := e.merge(dm, sm, depth+1); err != nil {
					return err
				}
			}
			// No copy path for an aggregate into a non-aggregate slot.
			continue
		}

		if _, ok := uref.Sequence(sv); ok {
			// Sequences only combine with sequences.
			continue
		}

		dst[k] = sv
	}
	return nil
}

// MergeSafe folds src into dst in place without ever overwriting an existing
// non-nil value:
//
//   - absent slot: aggregates and sequences are deep-cloned in (dst owns the
//     new subtree); scalars are copied directly.
//   - nil slot: skipped entirely. An explicit nil is a deliberate "no value
//     wanted" marker, protected from backfilling. A slot holding a nil
//     aggregate is treated the same way.
//   - aggregate into aggregate: recursive MergeSafe.
//   - any combination involving a sequence on either side: skipped;
//     sequences are never combined by MergeSafe.
func (e *Engine) MergeSafe(dst, src map[string]any) error {
	return e.mergeSafe(dst, src, 0)
}

func (e *Engine) mergeSafe(dst, src map[string]any, depth int) error {
	if depth >= e.cfg.MaxDepth {
		return ErrDepthExceeded
	}
	for k, sv := range src {
		dv, exists := dst[k]
		if !exists {
			switch KindOf(sv) {
			case KindAggregate, KindSequence:
				cv, err := e.cloneValue(sv, depth)
				if err != nil {
					return err
				}
				dst[k] = cv
			default:
				dst[k] = sv
			}
			continue
		}
		if dv == nil {
			continue
		}
		if _, ok := uref.Sequence(dv); ok {
			continue
		}
		if _, ok := uref.Sequence(sv); ok {
			continue
		}
		dm, dok := uref.Aggregate(dv)
		sm, sok := uref.Aggregate(sv)
		if dok && sok && dm != nil {
			if err := e.mergeSafe(dm, sm, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// MergeSequences returns a new sequence holding a's elements followed by
// every element of b not already present in a. Membership is value equality
// (reflect.DeepEqual) against a only: duplicates inside a or inside b are
// preserved. Order is stable on both sides.
func MergeSequences(a, b []any) []any {
	out := make([]any, len(a), len(a)+len(b))
	copy(out, a)
	for _, v := range b {
		if !containsValue(a, v) {
			out = append(out, v)
		}
	}
	return out
}

// MergeMarshal layers serialized documents left to right: the first document
// is cloned, and each later document only fills slots the accumulated result
// is still missing (via MergeSafe), so earlier documents win. The unmarshal
// and marshal functions make the operation format-agnostic (YAML, JSON, ...).
// Returns an empty byte slice when docs is empty.
func (e *Engine) MergeMarshal(
	unmarshal func([]byte, any) error,
	marshal func(any) ([]byte, error),
	docs ...[]byte,
) ([]byte, error) {
	if len(docs) == 0 {
		return []byte{}, nil
	}
	var result map[string]any
	for i, doc := range docs {
		var parsed any
		if err := unmarshal(doc, &parsed); err != nil {
			return nil, fmt.Errorf("deepx(object): unmarshal document %d: %w", i, err)
		}
		pm, ok := uref.Aggregate(parsed)
		if !ok {
			return nil, fmt.Errorf("deepx(object): document %d: %w", i, ErrNotAggregate)
		}
		if result == nil {
			cloned, err := e.Clone(pm)
			if err != nil {
				return nil, err
			}
			result = cloned
			continue
		}
		if err := e.MergeSafe(result, pm); err != nil {
			return nil, err
		}
	}
	return marshal(result)
}

// containsValue reports whether s holds an element deep-equal to v.
func containsValue(s []any, v any) bool {
	for _, el := range s {
		if reflect.DeepEqual(el, v) {
			return true
		}
	}
	return false
}
