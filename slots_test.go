// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotStoreAddGetRemove(t *testing.T) {
	var s slotStore[string]
	a := s.add("a")
	b := s.add("b")

	assert.Equal(t, "a", *s.get(a))
	assert.Equal(t, "b", *s.get(b))
	assert.True(t, s.has(a))

	v, ok := s.remove(a)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.False(t, s.has(a))
	assert.Nil(t, s.get(a))

	// removed slots are reused before the store grows.
	c := s.add("c")
	assert.Equal(t, a, c)
	assert.Equal(t, "c", *s.get(c))
}

func TestSlotStoreRemoveMissing(t *testing.T) {
	var s slotStore[int]
	_, ok := s.remove(0)
	assert.False(t, ok)

	idx := s.add(1)
	s.remove(idx)
	_, ok = s.remove(idx)
	assert.False(t, ok, "removing an already-freed slot must not succeed twice")
}

func TestSlotStoreRemoveWhere(t *testing.T) {
	var s slotStore[int]
	for i := 0; i < 5; i++ {
		s.add(i)
	}
	var removed []int
	s.removeWhere(func(_ int, v *int) bool {
		return *v%2 == 0
	}, func(idx int, v *int) {
		removed = append(removed, *v)
	})
	assert.ElementsMatch(t, []int{0, 2, 4}, removed)

	var remaining []int
	s.each(func(_ int, v *int) { remaining = append(remaining, *v) })
	assert.ElementsMatch(t, []int{1, 3}, remaining)
}
