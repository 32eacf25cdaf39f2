// SPDX-License-Identifier: MIT

package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atommesh/ring"
)

func TestRingKey_OrderInsensitive(t *testing.T) {
	assert.Equal(t, "1,4,9", ring.Ring{9, 1, 4}.Key())
	assert.Equal(t, ring.Ring{4, 9, 1}.Key(), ring.Ring{1, 9, 4}.Key())
	assert.Equal(t, "2,3,10", ring.Ring{10, 3, 2}.Key()) // numeric, not lexical, order
	assert.NotEqual(t, ring.Ring{1, 2, 3}.Key(), ring.Ring{1, 2, 4}.Key())
}

func TestRingAccessors(t *testing.T) {
	r := ring.Ring{5, 6, 7, 8}
	assert.Equal(t, 4, r.Size())
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(1))
	assert.Equal(t, "5-6-7-8", r.String())
}

func TestSet_AddDedupsByVertexSet(t *testing.T) {
	s := ring.NewSet(4)
	assert.Equal(t, 4, s.Size())

	require.True(t, s.Add(ring.Ring{0, 1, 2, 3}))
	assert.False(t, s.Add(ring.Ring{1, 2, 3, 0}))
	assert.False(t, s.Add(ring.Ring{0, 3, 2, 1}))
	assert.False(t, s.Add(ring.Ring{0, 1, 2}), "wrong size")
	require.True(t, s.Add(ring.Ring{4, 5, 6, 7}))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(ring.Ring{3, 2, 1, 0}))
	assert.Equal(t, []string{"0,1,2,3", "4,5,6,7"}, s.Keys())
	// first-seen ordering is kept
	assert.Equal(t, []ring.Ring{{0, 1, 2, 3}, {4, 5, 6, 7}}, s.Rings())
}

func TestSet_StoresCopies(t *testing.T) {
	s := ring.NewSet(3)
	r := ring.Ring{0, 1, 2}
	s.Add(r)
	r[0] = 9

	got := s.Rings()
	assert.Equal(t, ring.Ring{0, 1, 2}, got[0])
	got[0][1] = 9
	assert.Equal(t, ring.Ring{0, 1, 2}, s.Rings()[0])
}

func TestSet_NilLen(t *testing.T) {
	var s *ring.Set
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Rings())
}
