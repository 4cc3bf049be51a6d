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
	"reflect"
)

var (
	aggregateType = reflect.TypeOf(map[string]any(nil))
	sequenceType  = reflect.TypeOf([]any(nil))
)

// Aggregate returns the map[string]any view of v. It succeeds for any value
// whose dynamic type has underlying type map[string]any, including named map
// types (aggregate kinds). The view shares the underlying map, so writes
// through it are visible on the original value.
func Aggregate(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || !rv.Type().ConvertibleTo(aggregateType) {
		return nil, false
	}
	return rv.Convert(aggregateType).Interface().(map[string]any), true
}

// Sequence returns the []any view of v. It succeeds for any value whose
// dynamic type has underlying type []any, including named slice types.
// The view shares the backing array with the original value.
func Sequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || !rv.Type().ConvertibleTo(sequenceType) {
		return nil, false
	}
	return rv.Convert(sequenceType).Interface().([]any), true
}

// Callable reports whether v is a func value.
func Callable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}
