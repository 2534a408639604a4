// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package equality

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
}

type tagged struct {
	name string
	tags []string
}

type hashed struct {
	id    int
	label string
}

func (h hashed) Hash() uint64 {
	return uint64(h.id)
}

type node struct {
	id int
}

func (n *node) Equal(other *node) bool {
	return n.id == other.id
}

func (n *node) Hash() uint64 {
	return uint64(n.id)
}

func TestEqual_ComparableValues_UseEqualityOperator(t *testing.T) {
	require.True(t, Equal(1, 1))
	require.False(t, Equal(1, 2))
	require.True(t, Equal("a", "a"))
	require.True(t, Equal(point{1, 2}, point{1, 2}))
	require.False(t, Equal(point{1, 2}, point{2, 1}))
}

func TestEqual_Pointers_AreComparedByIdentity(t *testing.T) {
	a, b := &point{1, 2}, &point{1, 2}
	require.True(t, Equal(a, a))
	require.False(t, Equal(a, b))
}

func TestEqual_NonComparableValues_AreComparedDeeply(t *testing.T) {
	require.True(t, Equal([]int{1, 2}, []int{1, 2}))
	require.False(t, Equal([]int{1, 2}, []int{2, 1}))
	require.True(t, Equal(tagged{"a", []string{"x"}}, tagged{"a", []string{"x"}}))
	require.False(t, Equal(tagged{"a", []string{"x"}}, tagged{"a", []string{"y"}}))
}

func TestEqual_TypesWithEqualMethod_UseIt(t *testing.T) {
	now := time.Now()
	require.True(t, Equal(now, now.In(time.UTC)))
}

func TestEqual_InterfaceValues_CompareDynamicTypes(t *testing.T) {
	require.True(t, Equal[any](nil, nil))
	require.False(t, Equal[any](nil, 1))
	require.False(t, Equal[any](1, "1"))
	require.True(t, Equal[any](1, 1))
	require.True(t, Equal[any]([]int{1}, []int{1}))
}

func TestEqual_NaN_IsEqualToItself(t *testing.T) {
	nan := math.NaN()
	require.True(t, Equal(nan, nan))
	require.True(t, Equal(float32(nan), float32(nan)))
	require.True(t, Equal(complex(nan, 1), complex(nan, 1)))
	require.True(t, Equal[any](nan, nan))
	require.False(t, Equal(nan, 1.0))
	require.False(t, Equal(complex(nan, 1), complex(nan, 2)))
	require.Equal(t, Hash(nan), Hash(math.Float64frombits(0x7ff8000000000abc)))
	require.Equal(t, Hash(complex(nan, 1)), Hash(complex(nan, 1)))
}

func TestEqual_NilPointers_DoNotInvokeEqualMethod(t *testing.T) {
	var missing *node
	require.True(t, Equal(missing, missing))
	require.False(t, Equal(missing, &node{}))
	require.False(t, Equal(&node{}, missing))
	require.True(t, Equal(&node{id: 1}, &node{id: 1}))
	require.False(t, Equal[any](missing, (*point)(nil)))
	require.Equal(t, Hash(missing), Hash[*node](nil))
	require.NotEqual(t, Hash(missing), Hash(&node{}))
}

func TestEqual_Errors_AreComparedByIdentity(t *testing.T) {
	issue := errors.New("issue")
	require.True(t, Equal[error](issue, issue))
	require.False(t, Equal[error](issue, errors.New("issue")))
}

func TestHash_EqualValues_HaveEqualHashes(t *testing.T) {
	shared := &point{3, 4}
	tests := map[string][2]any{
		"int":        {12, 12},
		"string":     {"hello", "hello"},
		"struct":     {point{1, 2}, point{1, 2}},
		"zero":       {0.0, math.Copysign(0, -1)},
		"slice":      {[]int{1, 2, 3}, []int{1, 2, 3}},
		"deep":       {tagged{"a", []string{"x"}}, tagged{"a", []string{"x"}}},
		"pointer":    {shared, shared},
		"deep-ptr":   {[]*point{{1, 2}}, []*point{{1, 2}}},
		"nil":        {nil, nil},
		"map":        {map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}},
		"interfaces": {any(point{1, 2}), any(point{1, 2})},
	}
	for name, pair := range tests {
		t.Run(name, func(t *testing.T) {
			require.True(t, Equal(pair[0], pair[1]))
			require.Equal(t, Hash(pair[0]), Hash(pair[1]))
		})
	}
}

func TestHash_TypesWithEqualMethod_AreHashedConsistently(t *testing.T) {
	a, b := time.Unix(10, 0), time.Unix(10, 0).In(time.UTC)
	require.True(t, Equal(a, b))
	require.Equal(t, Hash(a), Hash(b))
}

func TestHash_DifferentValues_HaveDifferentHashes(t *testing.T) {
	require.NotEqual(t, Hash(1), Hash(2))
	require.NotEqual(t, Hash("a"), Hash("b"))
	require.NotEqual(t, Hash(point{1, 2}), Hash(point{2, 1}))
	require.NotEqual(t, Hash([]int{1}), Hash([]int{1, 1}))
	require.NotEqual(t, Hash[any](1), Hash[any]("1"))
}

func TestHash_IsDeterministic(t *testing.T) {
	require.Equal(t, Hash(point{1, 2}), Hash(point{1, 2}))
	require.Equal(t, Hash("stable"), Hash("stable"))
}

func TestHash_HasherIsUsed(t *testing.T) {
	require.Equal(t, Hash(hashed{id: 1, label: "a"}), Hash(hashed{id: 1, label: "b"}))
	require.NotEqual(t, Hash(hashed{id: 1}), Hash(hashed{id: 2}))
}
