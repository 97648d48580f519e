/*
   Copyright 2025 The DIRPX Authors

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

package details_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errorsx/details"
)

type payload struct {
	Host string
	Port int
}

func TestGet_RoundTrip(t *testing.T) {
	m := details.Map{}.
		With("str", "value").
		With("int", 42).
		With("struct", payload{Host: "db-2", Port: 5432}).
		With("ptr", &payload{Host: "db-3"})

	s, ok := details.Get[string](m, "str")
	require.True(t, ok)
	assert.Equal(t, "value", s)

	i, ok := details.Get[int](m, "int")
	require.True(t, ok)
	assert.Equal(t, 42, i)

	p, ok := details.Get[payload](m, "struct")
	require.True(t, ok)
	assert.Equal(t, payload{Host: "db-2", Port: 5432}, p)

	pp, ok := details.Get[*payload](m, "ptr")
	require.True(t, ok)
	assert.Equal(t, "db-3", pp.Host)
}

func TestGet_MismatchedTypeReportsAbsent(t *testing.T) {
	m := details.Map{}.With("n", 42)

	// Exact dynamic-type match only: int is not visible as int64 or string.
	_, ok := details.Get[int64](m, "n")
	assert.False(t, ok)
	_, ok = details.Get[string](m, "n")
	assert.False(t, ok)
}

func TestGet_AbsentKeyAndNilMap(t *testing.T) {
	m := details.Map{}.With("k", 1)

	v, ok := details.Get[int](m, "missing")
	assert.False(t, ok)
	assert.Zero(t, v)

	var none details.Map
	_, ok = details.Get[int](none, "k")
	assert.False(t, ok)
}

func TestGet_NilValueUnderKey(t *testing.T) {
	m := details.Map{}.With("k", nil)

	// Present key, but the stored value has no dynamic type: a typed read
	// cannot match it and must report absent rather than panic.
	_, ok := details.Get[*payload](m, "k")
	assert.False(t, ok)
}

func TestWith_CopyOnWrite(t *testing.T) {
	m1 := details.Map{}.With("a", 1)
	m2 := m1.With("b", 2)

	assert.Len(t, m1, 1)
	assert.Len(t, m2, 2)
	_, ok := m1["b"]
	assert.False(t, ok, "original must not observe later writes")
}

func TestMerge_CopyOnWriteAndPrecedence(t *testing.T) {
	m1 := details.Map{}.With("a", 1)
	m2 := m1.Merge(map[string]any{"a": 3, "b": 2})

	assert.Equal(t, 1, m1["a"], "original must not be modified")
	assert.Equal(t, 3, m2["a"], "merged values take precedence")
	assert.Equal(t, 2, m2["b"])

	assert.Equal(t, m1, m1.Merge(nil), "empty merge returns the receiver")
}

func TestClone(t *testing.T) {
	m := details.Map{}.With("k", "v")
	c := m.Clone()

	require.Equal(t, m, c)
	c["k"] = "mutated"
	assert.Equal(t, "v", m["k"])

	var none details.Map
	assert.Nil(t, none.Clone())
}

func TestMustGet(t *testing.T) {
	m := details.Map{}.With("k", 7)

	assert.Equal(t, 7, details.MustGet[int](m, "k"))
	assert.Panics(t, func() { details.MustGet[int](m, "missing") })
	assert.Panics(t, func() { details.MustGet[string](m, "k") })
}
