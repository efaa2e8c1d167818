package service

import (
	"Rately/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 入参校验发生在任何存取之前，零值服务即可覆盖
func TestUpsertRating_Validation(t *testing.T) {
	s := &RatingService{}
	ctx := context.Background()

	_, err := s.UpsertRating(ctx, 1, &types.UpsertRatingRequest{
		ContentType: "cassette", ContentID: "c1", Score: 8,
	})
	assert.ErrorIs(t, err, types.ErrInvalidContentType)

	_, err = s.UpsertRating(ctx, 1, &types.UpsertRatingRequest{
		ContentType: types.ContentTypeMovie, ContentID: "m1", Score: 11,
	})
	assert.ErrorIs(t, err, types.ErrInvalidScore)

	// 状态非法要报状态错误，不能和类别错误混用
	_, err = s.UpsertRating(ctx, 1, &types.UpsertRatingRequest{
		ContentType: types.ContentTypeMovie, ContentID: "m1", Score: 8, Status: "paused",
	})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}
