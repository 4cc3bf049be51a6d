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

package object_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"dirpx.dev/deepx/config"
	"dirpx.dev/deepx/object"
)

func TestChanges_IdenticalMeansNil(t *testing.T) {
	e := newEngine(t)

	x := map[string]any{
		"a": 1,
		"b": map[string]any{"c": "v", "d": []any{1, 2}},
	}
	got, err := e.Changes(x, x)
	require.NoError(t, err)
	require.Nil(t, got, "identical inputs must diff to nil, got:\n%s", spew.Sdump(got))
}

func TestChanges_FalsyValuesNeverDiffer(t *testing.T) {
	e := newEngine(t)

	candidate := map[string]any{
		"a":   0,
		"b":   false,
		"c":   "",
		"d":   nil,
		"e":   0.0,
		"nan": math.NaN(),
		"sub": map[string]any{"d": 1},
	}
	original := map[string]any{
		"a":   "",
		"b":   0,
		"c":   nil,
		"d":   false,
		"e":   uint8(0),
		"nan": 0,
		"sub": map[string]any{"d": 1},
	}
	got, err := e.Changes(candidate, original)
	require.NoError(t, err)
	require.Nil(t, got, "falsy grid must diff to nil, got:\n%s", spew.Sdump(got))
}

func TestChanges_ScalarRules(t *testing.T) {
	e := newEngine(t)

	t.Run("value change reported", func(t *testing.T) {
		got, err := e.Changes(map[string]any{"a": 2}, map[string]any{"a": 1})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": 2}, got)
	})

	t.Run("type change reported", func(t *testing.T) {
		got, err := e.Changes(map[string]any{"a": "1"}, map[string]any{"a": 1})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": "1"}, got)
	})

	t.Run("new slot reported", func(t *testing.T) {
		got, err := e.Changes(map[string]any{"a": 1, "b": 2}, map[string]any{"a": 1})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"b": 2}, got)
	})

	t.Run("removed slot not reported", func(t *testing.T) {
		got, err := e.Changes(map[string]any{"a": 1}, map[string]any{"a": 1, "gone": 2})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestChanges_AggregateRules(t *testing.T) {
	e := newEngine(t)

	t.Run("nested diff is minimal", func(t *testing.T) {
		candidate := map[string]any{"cfg": map[string]any{"host": "b", "port": 80}}
		original := map[string]any{"cfg": map[string]any{"host": "a", "port": 80}}
		got, err := e.Changes(candidate, original)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"cfg": map[string]any{"host": "b"}}, got)
	})

	t.Run("aggregate vs non-aggregate reports whole subtree", func(t *testing.T) {
		sub := map[string]any{"x": 1}
		got, err := e.Changes(map[string]any{"a": sub}, map[string]any{"a": "scalar"})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": sub}, got)
	})

	t.Run("empty sub-diff skipped", func(t *testing.T) {
		got, err := e.Changes(
			map[string]any{"a": map[string]any{"x": 1}, "b": 2},
			map[string]any{"a": map[string]any{"x": 1}, "b": 3},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"b": 2}, got)
	})
}

func TestChanges_SequenceWalkedIndexWise(t *testing.T) {
	e := newEngine(t)

	t.Run("differing index reported under its decimal key", func(t *testing.T) {
		got, err := e.Changes(
			map[string]any{"l": []any{1, 2, 3}},
			map[string]any{"l": []any{1, 9, 3}},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"l": map[string]any{"1": 2}}, got)
	})

	t.Run("extra candidate elements diff against absence", func(t *testing.T) {
		got, err := e.Changes(
			map[string]any{"l": []any{1, 2}},
			map[string]any{"l": []any{1}},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"l": map[string]any{"1": 2}}, got)
	})

	t.Run("equal sequences diff to nothing", func(t *testing.T) {
		got, err := e.Changes(
			map[string]any{"l": []any{1, map[string]any{"x": 1}}},
			map[string]any{"l": []any{1, map[string]any{"x": 1}}},
		)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("sequence vs non-sequence reports whole value", func(t *testing.T) {
		got, err := e.Changes(
			map[string]any{"l": []any{1}},
			map[string]any{"l": "scalar"},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"l": []any{1}}, got)
	})
}

func TestChanges_MergeRoundTrip(t *testing.T) {
	e := newEngine(t)

	original := map[string]any{
		"name": "svc",
		"cfg":  map[string]any{"host": "a", "port": 80},
	}
	candidate := map[string]any{
		"name": "svc",
		"cfg":  map[string]any{"host": "b", "port": 80},
		"new":  true,
	}

	d, err := e.Changes(candidate, original)
	require.NoError(t, err)
	require.NotNil(t, d)

	// Applying the diff over the original reconstructs the candidate for
	// shape-compatible, truthy-valued inputs.
	require.NoError(t, e.Merge(original, d))
	require.Equal(t, candidate, original)
}

func TestChanges_CyclicFailsBounded(t *testing.T) {
	e := newEngine(t, config.WithMaxDepth(16))

	a := map[string]any{}
	a["self"] = a
	b := map[string]any{}
	b["self"] = b

	_, err := e.Changes(a, b)
	require.ErrorIs(t, err, object.ErrDepthExceeded)
}
