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

// Package seq provides small, stateless helpers over ordered sequences:
// random selection, partitioning by key, and membership checks.
package seq

import (
	"math/rand"
)

// Pick returns a uniformly random element of s, or (zero, false) when s is empty.
func Pick[S ~[]T, T any](s S) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[rand.Intn(len(s))], true
}

// PickFunc returns a uniformly random element among those matching pred,
// or (zero, false) when none match.
func PickFunc[S ~[]T, T any](s S, pred func(T) bool) (T, bool) {
	matches := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			matches = append(matches, v)
		}
	}
	return Pick(matches)
}

// PartitionBy groups the elements of s by the key function.
// Element order within each group follows the order in s.
func PartitionBy[S ~[]T, T any](s S, key func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, v := range s {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// ContainsAny reports whether s contains at least one of candidates.
func ContainsAny[S ~[]T, T comparable](s S, candidates ...T) bool {
	for _, v := range s {
		for _, c := range candidates {
			if v == c {
				return true
			}
		}
	}
	return false
}
