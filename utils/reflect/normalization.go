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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/deepx/apis"
	"dirpx.dev/deepx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotAggregate indicates that the provided type (after unwrapping
	// pointers) is not aggregate-shaped (underlying map[string]any).
	ErrReflectNotAggregate = errors.New("reflect: type is not an aggregate kind")
)

// Normalize unwraps pointers according to cfg.MaxUnwrap and returns the base
// aggregate type suitable as a model registry key, or an error if the type
// does not denote an aggregate kind.
//
// Unwrapping policy:
//   - ptr -> Elem()
//   - map with underlying type map[string]any -> return t.
//   - anything else -> ErrReflectNotAggregate.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr:
			t = t.Elem()

		case reflect.Map:
			if t.ConvertibleTo(aggregateType) {
				return t, nil
			}
			return nil, ErrReflectNotAggregate

		default:
			return nil, ErrReflectNotAggregate
		}
	}

	// After reaching max depth, ensure we ended on an aggregate kind.
	if t != nil && t.Kind() == reflect.Map && t.ConvertibleTo(aggregateType) {
		return t, nil
	}
	return nil, ErrReflectNotAggregate
}
