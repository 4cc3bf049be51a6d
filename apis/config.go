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

// Config carries read-only knobs that influence the recursive algorithms
// and property-chain discovery. It is passed by value and should be treated
// as immutable by implementations.
type Config struct {
	// MaxDepth bounds recursion in Clone/Merge/Changes. Cyclic aggregates
	// exceed the bound and fail with an explicit error instead of exhausting
	// the call stack.
	MaxDepth int

	// MaxUnwrap limits pointer/interface unwrapping depth when normalizing
	// a type for model registry lookups.
	MaxUnwrap int

	// ProjectWritableOnly is the default writability filter for Project.
	// When true, slots that are neither directly writable nor setter-backed
	// are omitted from projections unless explicitly included.
	ProjectWritableOnly bool
}
