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
	"sort"

	"dirpx.dev/deepx/capability"
	uref "dirpx.dev/deepx/utils/reflect"
)

// Assign copies every enumerable slot from src's chain into dst, skipping
// names in exclude and every slot dst's property model marks unwritable.
// Skips are silent; callers that need to know what was withheld should
// consult the Reflector directly. Values are read through src's getters
// where declared and written through dst's setters where declared.
func (e *Engine) Assign(dst, src any, exclude ...string) error {
	if _, ok := uref.Aggregate(dst); !ok {
		return ErrNotAggregate
	}
	if _, ok := uref.Aggregate(src); !ok {
		return ErrNotAggregate
	}
	skip := nameSet(exclude)
	blocked := e.ref.Unwritable(dst, e.cfg)
	for _, name := range e.ref.Enumerate(src, true, true, e.cfg) {
		if _, x := skip[name]; x {
			continue
		}
		if _, x := blocked[name]; x {
			continue
		}
		v, ok := e.ref.Read(src, name, e.cfg)
		if !ok {
			continue
		}
		e.ref.Write(dst, name, v, e.cfg)
	}
	return nil
}

// AssignOwn copies src's own stored slots (no chain walk on the source side)
// into dst, but only where dst already declares the slot — through its own
// storage or its chain — and the declaration is assignable. Slots dst does
// not declare are never created.
func (e *Engine) AssignOwn(dst, src any, exclude ...string) error {
	if _, ok := uref.Aggregate(dst); !ok {
		return ErrNotAggregate
	}
	sm, ok := uref.Aggregate(src)
	if !ok {
		return ErrNotAggregate
	}
	skip := nameSet(exclude)
	for _, name := range sortedKeys(sm) {
		if _, x := skip[name]; x {
			continue
		}
		d, declared := e.ref.Describe(dst, name, e.cfg)
		if !declared || !d.Assignable() {
			continue
		}
		e.ref.Write(dst, name, sm[name], e.cfg)
	}
	return nil
}

// ProjectOption customizes a single Project call.
type ProjectOption func(*projection)

type projection struct {
	includes     []string
	excludes     map[string]struct{}
	writableOnly bool
}

// WithInclude forces the named slots into the projection (when readable on
// the object), regardless of writability. Included names are copied first.
// Callables stay excluded even when named here.
func WithInclude(names ...string) ProjectOption {
	return func(p *projection) {
		p.includes = append(p.includes, names...)
	}
}

// WithExclude drops the named slots from the chain walk. Excludes do not
// override WithInclude.
func WithExclude(names ...string) ProjectOption {
	return func(p *projection) {
		for _, n := range names {
			p.excludes[n] = struct{}{}
		}
	}
}

// WithUnwritable disables the writability filter for this call, projecting
// read-only slots as well.
func WithUnwritable() ProjectOption {
	return func(p *projection) {
		p.writableOnly = false
	}
}

// Project builds a plain bare aggregate from obj for serialization. Included
// names are copied first; then every enumerable slot of obj's chain that is
// not excluded, not callable, and (under the writability filter, on by
// default per Config.ProjectWritableOnly) not unwritable. Each copied value
// is passed through its capability.Projectable hook when it has one;
// otherwise it is stored as-is. Subtrees are not recursively re-filtered.
func (e *Engine) Project(obj any, opts ...ProjectOption) (map[string]any, error) {
	if _, ok := uref.Aggregate(obj); !ok {
		return nil, ErrNotAggregate
	}
	p := projection{
		excludes:     map[string]struct{}{},
		writableOnly: e.cfg.ProjectWritableOnly,
	}
	for _, opt := range opts {
		opt(&p)
	}

	out := map[string]any{}
	for _, name := range p.includes {
		v, ok := e.ref.Read(obj, name, e.cfg)
		if !ok || uref.Callable(v) {
			continue
		}
		out[name] = projectValue(v)
	}

	var blocked map[string]struct{}
	if p.writableOnly {
		blocked = e.ref.Unwritable(obj, e.cfg)
	}
	for _, name := range e.ref.Enumerate(obj, true, true, e.cfg) {
		if _, x := p.excludes[name]; x {
			continue
		}
		if _, x := blocked[name]; x {
			continue
		}
		if _, done := out[name]; done {
			continue
		}
		v, ok := e.ref.Read(obj, name, e.cfg)
		if !ok {
			continue
		}
		out[name] = projectValue(v)
	}
	return out, nil
}

// projectValue applies the Projectable capability when present.
func projectValue(v any) any {
	if p, ok := v.(capability.Projectable); ok {
		return p.ProjectValue()
	}
	return v
}

func nameSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
