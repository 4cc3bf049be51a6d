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

package apis

import (
	"reflect"
)

// Strategy is a pluggable chain-discovery step. A Reflector can chain
// multiple strategies in order (e.g., Chained -> Registry -> Bare).
type Strategy interface {
	// TryChain attempts to discover the property chain for value v.
	// It returns (chain, true) if handled; otherwise (nil, false) to fall
	// through. A handled nil chain means "bare aggregate, no model".
	TryChain(v any, cfg Config) (chain Chain, handled bool)

	// TryChainType attempts to discover the property chain for the
	// reflect.Type t.
	TryChainType(t reflect.Type, cfg Config) (chain Chain, handled bool)
}
