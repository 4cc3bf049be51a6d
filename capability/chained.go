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

package capability

import "dirpx.dev/deepx/apis"

// Chained lets an aggregate kind declare its property chain directly.
//
// # Overview
//
// Chained is the zero-reflection fast path for chain discovery inside the
// deepx reflection subsystem. When a value implements Chained, the discovery
// logic MUST prefer this interface and MUST NOT consult the model registry
// or any fallback strategy for that value.
//
// Semantically, Chained is a type-level contract: PropertyChain describes
// the *kind* of aggregate, not a particular instance. The returned chain is
// expected to be independent of instance state and stable for the lifetime
// of the process.
//
// # Usage
//
// Aggregate kinds are named map types, so the method can be declared on the
// kind itself:
//
//	type account map[string]any
//
//	var accountChain = apis.Chain{
//	    {Name: "account", Slots: []apis.Descriptor{
//	        {Name: "id"},                      // read-only
//	        {Name: "email", Writable: true},
//	    }},
//	}
//
//	func (account) PropertyChain() apis.Chain { return accountChain }
//
// # Contract
//
//   - The returned chain MUST be deterministic for a given concrete type
//     and MUST NOT depend on mutable instance state.
//   - Implementations SHOULD return a precomputed value; rebuilding the
//     chain per call wastes the fast path.
//   - Implementations MUST be safe for concurrent calls from multiple
//     goroutines and MUST NOT perform blocking operations or I/O.
type Chained interface {
	// PropertyChain returns the property chain for this aggregate kind,
	// most-derived level first.
	PropertyChain() apis.Chain
}
