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

// Kind is the closed shape tag every recursive algorithm dispatches on.
// Classification happens once per node via KindOf; no algorithm re-infers a
// value's shape ad hoc mid-walk.
type Kind uint8

const (
	// KindNil is an untyped nil (absence of a value).
	KindNil Kind = iota
	// KindScalar is any value that is not an aggregate, sequence, or func.
	KindScalar
	// KindSequence is an ordered, index-addressed collection
	// (underlying []any).
	KindSequence
	// KindAggregate is a keyed collection of named slots
	// (underlying map[string]any).
	KindAggregate
	// KindCallable is a func value. Callables are excluded from property
	// enumeration and projection but are copied by Merge like scalars.
	KindCallable
)

// String returns a human-readable representation of the Kind value.
// For unknown or out-of-range values it returns a diagnostic form
// "Unknown(<n>)" rather than panicking.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindScalar:
		return "Scalar"
	case KindSequence:
		return "Sequence"
	case KindAggregate:
		return "Aggregate"
	case KindCallable:
		return "Callable"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// KindOf classifies v into the closed shape tag.
func KindOf(v any) Kind {
	if v == nil {
		return KindNil
	}
	if _, ok := uref.Aggregate(v); ok {
		return KindAggregate
	}
	if _, ok := uref.Sequence(v); ok {
		return KindSequence
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return KindCallable
	}
	return KindScalar
}
