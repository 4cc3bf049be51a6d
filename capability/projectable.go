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

// Projectable lets a value supply its own plain, serializable form.
//
// Project consults this capability per slot value: when present, the hook's
// result is stored in the projection instead of the raw value. The hook is
// applied at the top level of each projected slot only; Project does not
// re-filter inside the returned structure.
//
// Implementations MUST NOT mutate the receiver and MUST NOT perform blocking
// operations or I/O.
type Projectable interface {
	// ProjectValue returns the plain representation of the receiver.
	ProjectValue() any
}
