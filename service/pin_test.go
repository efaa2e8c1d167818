package service

import (
	"Rately/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignPinSlot_PicksSmallestFree(t *testing.T) {
	used := map[int]bool{1: true, 3: true}

	pos, err := AssignPinSlot(used, 0)

	assert.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestAssignPinSlot_RequestedSlot(t *testing.T) {
	used := map[int]bool{1: true}

	pos, err := AssignPinSlot(used, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, pos)

	_, err = AssignPinSlot(used, 1)
	assert.Error(t, err)
}

func TestAssignPinSlot_CapacityFull(t *testing.T) {
	used := make(map[int]bool)
	for i := 1; i <= types.MaxPinnedItems; i++ {
		used[i] = true
	}

	// 第 6 个置顶被拒，既有 5 个不受影响
	_, err := AssignPinSlot(used, 0)
	assert.ErrorIs(t, err, types.ErrMaxPinned)

	_, err = AssignPinSlot(used, 3)
	assert.ErrorIs(t, err, types.ErrMaxPinned)
	assert.Len(t, used, types.MaxPinnedItems)
}
