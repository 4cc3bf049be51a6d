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
	"dirpx.dev/deepx/capability"
)

// NewChainedStrategy creates an apis.Strategy that uses capability.Chained.
func NewChainedStrategy() apis.Strategy {
	return &chainedStrategy{}
}

// chainedStrategy is a zero-cost fast path: if v implements
// capability.Chained, return its PropertyChain() and stop the chain.
type chainedStrategy struct{}

// Ensure chainedStrategy implements apis.Strategy.
var _ apis.Strategy = (*chainedStrategy)(nil)

// TryChain checks if v implements capability.Chained and returns its PropertyChain().
func (*chainedStrategy) TryChain(v any, _ apis.Config) (apis.Chain, bool) {
	if v == nil {
		return nil, false
	}
	if c, ok := v.(capability.Chained); ok {
		return c.PropertyChain(), true
	}
	return nil, false
}

// TryChainType checks if a zero value of t would implement capability.Chained.
func (*chainedStrategy) TryChainType(t reflect.Type, _ apis.Config) (apis.Chain, bool) {
	if t == nil {
		return nil, false
	}
	if t.Implements(chainedType) {
		z := reflect.Zero(t).Interface()
		if c, ok := z.(capability.Chained); ok {
			return c.PropertyChain(), true
		}
	}
	return nil, false
}

// chainedType is the interface type used for the Implements check.
var chainedType = reflect.TypeOf((*capability.Chained)(nil)).Elem()
