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
	"reflect"

	"dirpx.dev/deepx/capability"
	uref "dirpx.dev/deepx/utils/reflect"
)

// Clone deep-copies src into a fresh bare aggregate. The result shares no
// aggregate or sequence references with src, except for subtrees produced by
// a capability.Cloneable override (sharing there is the implementer's
// contract). Scalars are copied by value; nil slots stay nil.
//
// Clone copies instance data unconditionally: declared writability does not
// apply here (use CloneWithAncestry for a permission-respecting copy).
func (e *Engine) Clone(src any) (map[string]any, error) {
	return e.CloneInto(map[string]any{}, src)
}

// CloneInto deep-copies src's slots into dst and returns dst, enabling
// merge-into-existing-target usage. A nil dst is replaced with an empty
// aggregate. Existing dst slots not present in src are left untouched.
func (e *Engine) CloneInto(dst map[string]any, src any) (map[string]any, error) {
	sm, ok := uref.Aggregate(src)
	if !ok {
		return nil, ErrNotAggregate
	}
	if dst == nil {
		dst = map[string]any{}
	}
	if err := e.cloneSlots(dst, sm, 0); err != nil {
		return nil, err
	}
	return dst, nil
}

// CloneWithAncestry deep-copies src into a new empty instance of src's own
// kind (same named map type), so the clone keeps src's capability set and
// registered model. Unlike Clone, a slot is copied only when the
// destination's property model allows assignment to it.
func (e *Engine) CloneWithAncestry(src any) (any, error) {
	sm, ok := uref.Aggregate(src)
	if !ok {
		return nil, ErrNotAggregate
	}
	dst := reflect.MakeMapWithSize(reflect.TypeOf(src), len(sm)).Interface()
	return e.CloneWithAncestryInto(dst, src)
}

// CloneWithAncestryInto is CloneWithAncestry with a caller-supplied
// destination instance. Slots that dst's property model marks unwritable are
// skipped silently; setter-backed slots are assigned through their setter.
func (e *Engine) CloneWithAncestryInto(dst, src any) (any, error) {
	sm, ok := uref.Aggregate(src)
	if !ok {
		return nil, ErrNotAggregate
	}
	if _, ok := uref.Aggregate(dst); !ok {
		return nil, ErrNotAggregate
	}
	blocked := e.ref.Unwritable(dst, e.cfg)
	for k, v := range sm {
		if _, bad := blocked[k]; bad {
			continue
		}
		cv, err := e.cloneValue(v, 0)
		if err != nil {
			return nil, err
		}
		e.ref.Write(dst, k, cv, e.cfg)
	}
	return dst, nil
}

// cloneSlots copies every slot of src into dst, recursing through cloneValue.
func (e *Engine) cloneSlots(dst, src map[string]any, depth int) error {
	if depth >= e.cfg.MaxDepth {
		return ErrDepthExceeded
	}
	for k, v := range src {
		cv, err := e.cloneValue(v, depth)
		if err != nil {
			return err
		}
		dst[k] = cv
	}
	return nil
}

// cloneValue produces an independent copy of a single slot value.
// The Cloneable capability wins over structural recursion.
func (e *Engine) cloneValue(v any, depth int) (any, error) {
	if depth >= e.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}
	if v == nil {
		return nil, nil
	}
	if c, ok := v.(capability.Cloneable); ok {
		return c.CloneValue(), nil
	}
	if s, ok := uref.Sequence(v); ok {
		out := make([]any, len(s))
		for i, el := range s {
			cv, err := e.cloneValue(el, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	}
	if m, ok := uref.Aggregate(v); ok {
		out := make(map[string]any, len(m))
		if err := e.cloneSlots(out, m, depth+1); err != nil {
			return nil, err
		}
		return out, nil
	}
	return v, nil
}
