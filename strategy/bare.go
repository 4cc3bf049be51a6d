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

package strategy

import (
	"reflect"

	"dirpx.dev/deepx/apis"
	uref "dirpx.dev/deepx/utils/reflect"
)

// NewBareStrategy creates the terminal fallback apis.Strategy: any
// aggregate-shaped value is handled as a bare aggregate with no chain
// beyond the terminal root.
func NewBareStrategy() apis.Strategy {
	return bareStrategy{}
}

// bareStrategy is the universal fallback for unregistered aggregates.
type bareStrategy struct{}

// Ensure bareStrategy implements apis.Strategy.
var _ apis.Strategy = (*bareStrategy)(nil)

// TryChain handles any aggregate-shaped value with a nil chain.
func (bareStrategy) TryChain(v any, _ apis.Config) (apis.Chain, bool) {
	if v == nil {
		return nil, false
	}
	if _, ok := uref.Aggregate(v); !ok {
		return nil, false
	}
	return nil, true
}

// TryChainType handles any aggregate-shaped type with a nil chain.
func (bareStrategy) TryChainType(t reflect.Type, cfg apis.Config) (apis.Chain, bool) {
	if t == nil {
		return nil, false
	}
	if _, err := uref.Normalize(t, cfg); err != nil {
		return nil, false
	}
	return nil, true
}
