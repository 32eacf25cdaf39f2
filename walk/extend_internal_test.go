// SPDX-License-Identifier: MIT

package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	assert.Equal(t, []int{4, 7}, window(Walk{4, 7}))
	assert.Equal(t, []int{1}, window(Walk{0, 1, 2}))
	assert.Equal(t, []int{1, 2}, window(Walk{0, 1, 2, 3}))
	assert.Equal(t, []int{1, 3}, window(Walk{0, 1, 2, 3, 4}))
	// a closed size 4 walk keeps both inner atoms
	assert.Equal(t, []int{1, 2}, window(Walk{0, 1, 2, 0}))
}

func TestTouchingAny_MergesAscending(t *testing.T) {
	l := newList(3)
	l.add(Walk{0, 1, 2}) // 0
	l.add(Walk{2, 3, 4}) // 1
	l.add(Walk{4, 5, 0}) // 2
	l.add(Walk{1, 6, 7}) // 3

	assert.Equal(t, []int{0, 1, 2}, l.touchingAny(0, 2, 4))
	assert.Equal(t, []int{0, 1}, l.touchingAny(2, 2))
	assert.Equal(t, []int{3}, l.touchingAny(1))
	assert.Empty(t, l.touchingAny(9))
}
