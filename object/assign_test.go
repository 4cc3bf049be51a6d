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
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/deepx/apis"
	"dirpx.dev/deepx/config"
	"dirpx.dev/deepx/object"
)

// account mixes every descriptor flavor: a getter-only id, plain writable
// email, and a getter+setter token backed by a private storage key.
type account map[string]any

var accountChain = apis.Chain{
	{Name: "account", Slots: []apis.Descriptor{
		{Name: "id", Get: func(m map[string]any) any { return m["_id"] }},
		{Name: "email", Writable: true},
		{
			Name: "token",
			Get:  func(m map[string]any) any { return "tok" },
			Set:  func(m map[string]any, v any) { m["_tok"] = v },
		},
	}},
}

func (account) PropertyChain() apis.Chain { return accountChain }

// redacting hides its content when projected.
type redacting struct{ v string }

func (redacting) ProjectValue() any { return "***" }

func TestAssign_CopiesEnumerableSlots(t *testing.T) {
	e := newEngine(t)

	src := account{"_id": "A", "email": "e"}
	dst := map[string]any{}
	require.NoError(t, e.Assign(dst, src))

	// Getter-backed slots are materialized through their getters.
	require.Equal(t, map[string]any{
		"_id":   "A",
		"email": "e",
		"id":    "A",
		"token": "tok",
	}, dst)
}

func TestAssign_HonorsDestinationModel(t *testing.T) {
	e := newEngine(t)

	src := map[string]any{"id": "x", "email": "e", "token": "secret", "extra": 1}
	dst := account{}
	require.NoError(t, e.Assign(dst, src))

	require.NotContains(t, dst, "id", "getter-only slot rejects assignment")
	require.Equal(t, "e", dst["email"])
	require.Equal(t, "secret", dst["_tok"], "token assignment goes through the setter")
	require.Equal(t, 1, dst["extra"])
}

func TestAssign_Excludes(t *testing.T) {
	e := newEngine(t)

	src := map[string]any{"a": 1, "b": 2, "c": 3}
	dst := map[string]any{}
	require.NoError(t, e.Assign(dst, src, "b", "c"))
	require.Equal(t, map[string]any{"a": 1}, dst)
}

func TestAssign_NotAggregate(t *testing.T) {
	e := newEngine(t)

	require.ErrorIs(t, e.Assign(42, map[string]any{}), object.ErrNotAggregate)
	require.ErrorIs(t, e.Assign(map[string]any{}, 42), object.ErrNotAggregate)
}

func TestAssignOwn_OnlyDeclaredAssignableSlots(t *testing.T) {
	e := newEngine(t)

	src := map[string]any{"id": "x", "email": "e", "extra": 1}
	dst := account{}
	require.NoError(t, e.AssignOwn(dst, src))

	require.Equal(t, account{"email": "e"}, dst, "undeclared and read-only slots are never created")
}

func TestAssignOwn_StoredSlotIsDeclared(t *testing.T) {
	e := newEngine(t)

	// A stored slot is a level-0 declaration and accepts assignment.
	dst := account{"extra": 0}
	require.NoError(t, e.AssignOwn(dst, map[string]any{"extra": 5}))
	require.Equal(t, 5, dst["extra"])
}

func TestAssignOwn_Excludes(t *testing.T) {
	e := newEngine(t)

	dst := account{}
	require.NoError(t, e.AssignOwn(dst, map[string]any{"email": "e"}, "email"))
	require.Empty(t, dst)
}

func TestAssignOwn_SourceChainIgnored(t *testing.T) {
	e := newEngine(t)

	// AssignOwn reads only the source's stored slots: the getter-backed id
	// and token of the source kind contribute nothing.
	src := account{"email": "e"}
	dst := map[string]any{"email": "", "id": "", "token": ""}
	require.NoError(t, e.AssignOwn(dst, src))
	require.Equal(t, map[string]any{"email": "e", "id": "", "token": ""}, dst)
}

func TestProject_Default(t *testing.T) {
	e := newEngine(t)

	obj := account{"_id": "A", "email": "e", "fn": func() {}}
	got, err := e.Project(obj)
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"_id":   "A",
		"email": "e",
		"token": "tok",
	}, got, "unwritable id is filtered, callable fn is never projected")
}

func TestProject_WithUnwritable(t *testing.T) {
	e := newEngine(t)

	obj := account{"_id": "A", "email": "e"}
	got, err := e.Project(obj, object.WithUnwritable())
	require.NoError(t, err)
	require.Equal(t, "A", got["id"], "read-only slots appear when the filter is off")
}

func TestProject_ConfigDisablesFilter(t *testing.T) {
	e := newEngine(t, config.WithProjectWritableOnly(false))

	obj := account{"_id": "A"}
	got, err := e.Project(obj)
	require.NoError(t, err)
	require.Equal(t, "A", got["id"])
}

func TestProject_IncludeOverridesWritability(t *testing.T) {
	e := newEngine(t)

	obj := account{"_id": "A"}
	got, err := e.Project(obj, object.WithInclude("id"))
	require.NoError(t, err)
	require.Equal(t, "A", got["id"])
}

func TestProject_IncludeNeverProjectsCallables(t *testing.T) {
	e := newEngine(t)

	obj := map[string]any{"fn": func() {}, "a": 1}
	got, err := e.Project(obj, object.WithInclude("fn", "a"))
	require.NoError(t, err)
	require.NotContains(t, got, "fn")
	require.Equal(t, 1, got["a"])
}

func TestProject_Excludes(t *testing.T) {
	e := newEngine(t)

	obj := account{"_id": "A", "email": "e"}
	got, err := e.Project(obj, object.WithExclude("email", "_id"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{"token": "tok"}, got)
}

func TestProject_ProjectableHook(t *testing.T) {
	e := newEngine(t)

	obj := map[string]any{"secret": redacting{v: "raw"}, "plain": 1}
	got, err := e.Project(obj)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"secret": "***", "plain": 1}, got)
}

func TestProject_NotAggregate(t *testing.T) {
	e := newEngine(t)

	_, err := e.Project("nope")
	require.ErrorIs(t, err, object.ErrNotAggregate)
}
