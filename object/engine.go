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
	"errors"

	"dirpx.dev/deepx/apis"
	"dirpx.dev/deepx/config"
)

var (
	// ErrDepthExceeded is returned when a recursive walk exceeds
	// Config.MaxDepth. The usual cause is a cyclic aggregate: the library
	// performs no cycle detection, so the depth bound is what turns an
	// otherwise unbounded recursion into a defined failure.
	ErrDepthExceeded = errors.New("deepx(object): recursion depth exceeded")
	// ErrNotAggregate is returned when an operation requires an aggregate
	// (underlying map[string]any) and the argument is something else.
	ErrNotAggregate = errors.New("deepx(object): value is not an aggregate")
)

// Engine runs the recursive object-graph algorithms against a fixed Config
// and Reflector. An Engine is immutable and safe for concurrent use on
// disjoint aggregates; concurrent mutation of a shared destination must be
// serialized by the caller.
type Engine struct {
	cfg apis.Config
	ref apis.Reflector
}

// New constructs an Engine. A non-positive MaxDepth is replaced with the
// package default so the depth guard is always armed.
func New(cfg apis.Config, ref apis.Reflector) *Engine {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = config.DefaultMaxDepth
	}
	return &Engine{cfg: cfg, ref: ref}
}

// Config returns the engine's configuration.
func (e *Engine) Config() apis.Config { return e.cfg }

// Reflector returns the engine's property-model reflector.
func (e *Engine) Reflector() apis.Reflector { return e.ref }
