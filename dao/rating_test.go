package dao

import (
	"Rately/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeRatingRow_Insert(t *testing.T) {
	now := time.Now()
	incoming := &models.Rating{
		ID:          42,
		UserID:      101,
		ContentType: "movie",
		ContentID:   "m1",
		Score:       8,
	}

	isUpdate := MergeRatingRow(&models.Rating{}, incoming, now)

	assert.False(t, isUpdate)
	// 新建时保留调用方分配的雪花 ID
	assert.Equal(t, uint64(42), incoming.ID)
	assert.Equal(t, now, incoming.CreatedAt)
	assert.Equal(t, now, incoming.UpdatedAt)
}

func TestMergeRatingRow_SameKeyTwiceKeepsOneRow(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	first := &models.Rating{
		ID:          42,
		UserID:      101,
		ContentType: "movie",
		ContentID:   "m1",
		Score:       7,
	}
	assert.False(t, MergeRatingRow(nil, first, created))

	// 同一业务主键的第二次提交并到首次写入的行上，最后一次分值生效
	now := time.Now()
	second := &models.Rating{
		ID:          99,
		UserID:      101,
		ContentType: "movie",
		ContentID:   "m1",
		Score:       9.5,
	}
	isUpdate := MergeRatingRow(first, second, now)

	assert.True(t, isUpdate)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, created, second.CreatedAt)
	assert.Equal(t, now, second.UpdatedAt)
	assert.Equal(t, 9.5, second.Score)
}
