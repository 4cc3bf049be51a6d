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
	"math"
	"reflect"
	"strconv"

	uref "dirpx.dev/deepx/utils/reflect"
)

// Changes computes the minimal recursive diff of candidate against original.
// A nil result means "no differences". Otherwise the result is a new bare
// aggregate holding only the slots of candidate that differ:
//
//   - two falsy values (nil, false, "", numeric zero, NaN) never differ,
//     regardless of type.
//   - aggregate vs aggregate: recursive diff; an empty sub-diff is skipped.
//   - aggregate vs non-aggregate: the whole candidate subtree is reported.
//     The reported subtree is NOT cloned; it shares structure with candidate.
//   - sequence vs sequence: walked index by index as if the sequences were
//     keyed aggregates, producing a diff aggregate keyed by decimal index
//     strings. This index-wise walk is a deliberate simplification, not a
//     sequence-level diff.
//   - scalars: strict type and value equality.
//
// Slots present only in original are not reported; the diff is one-sided
// over candidate's slots.
func (e *Engine) Changes(candidate, original map[string]any) (map[string]any, error) {
	return e.changes(candidate, original, 0)
}

func (e *Engine) changes(candidate, original map[string]any, depth int) (map[string]any, error) {
	if depth >= e.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}
	out := map[string]any{}
	for k, cv := range candidate {
		if err := e.diffSlot(out, k, cv, original[k], depth); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// diffSlot applies the per-slot rules, storing a reported difference under
// key in out.
func (e *Engine) diffSlot(out map[string]any, key string, cv, ov any, depth int) error {
	if falsy(cv) && falsy(ov) {
		return nil
	}
	if cm, ok := uref.Aggregate(cv); ok {
		if om, ok := uref.Aggregate(ov); ok {
			sub, err := e.changes(cm, om, depth+1)
			if err != nil {
				return err
			}
			if sub != nil {
				out[key] = sub
			}
			return nil
		}
		out[key] = cv
		return nil
	}
	if cs, ok := uref.Sequence(cv); ok {
		if os, ok := uref.Sequence(ov); ok {
			sub, err := e.changesSequence(cs, os, depth+1)
			if err != nil {
				return err
			}
			if sub != nil {
				out[key] = sub
			}
			return nil
		}
		out[key] = cv
		return nil
	}
	if scalarEqual(cv, ov) {
		return nil
	}
	out[key] = cv
	return nil
}

// changesSequence walks two sequences index by index under the same per-slot
// rules, keyed by the decimal index. Candidate elements beyond original's
// length diff against absence.
func (e *Engine) changesSequence(cs, os []any, depth int) (map[string]any, error) {
	if depth >= e.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}
	out := map[string]any{}
	for i, cv := range cs {
		var ov any
		if i < len(os) {
			ov = os[i]
		}
		if err := e.diffSlot(out, strconv.Itoa(i), cv, ov, depth); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// falsy reports whether v is one of the empty-ish values that Changes treats
// as mutually equal: nil, false, the empty string, numeric zero, and NaN.
func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	default:
		return false
	}
}

// scalarEqual compares two non-aggregate values strictly: equal dynamic type
// and equal value. Non-comparable or differently typed values never match.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
