package service

import (
	"Rately/models"
	"Rately/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratingWith(contentType string, score float64) *models.Rating {
	return &models.Rating{ContentType: contentType, Score: score}
}

func TestBuildScoreDistribution_Empty(t *testing.T) {
	dist := BuildScoreDistribution(nil)

	assert.Len(t, dist.Buckets, types.ScoreBucketCount)
	assert.Equal(t, int64(0), dist.TotalRatings)
	// 空分布时 maxCount 保持 1，前端按它归一化不会除零
	assert.Equal(t, int64(1), dist.MaxCount)
	for _, b := range dist.Buckets {
		assert.Equal(t, int64(0), b.TotalCount)
		assert.Empty(t, b.Segments)
	}
}

func TestBuildScoreDistribution_BucketPlacement(t *testing.T) {
	ratings := []*models.Rating{
		ratingWith(types.ContentTypeMovie, 0),
		ratingWith(types.ContentTypeMovie, 7.5),
		ratingWith(types.ContentTypeBook, 7.5),
		ratingWith(types.ContentTypeGame, 10),
	}

	dist := BuildScoreDistribution(ratings)

	assert.Equal(t, int64(4), dist.TotalRatings)
	assert.Equal(t, int64(1), dist.Buckets[0].TotalCount)
	assert.Equal(t, int64(2), dist.Buckets[15].TotalCount) // 7.5 * 2
	assert.Equal(t, int64(1), dist.Buckets[20].TotalCount)
	assert.Equal(t, int64(2), dist.MaxCount)

	// 桶的分值刻度固定
	assert.Equal(t, 0.0, dist.Buckets[0].Score)
	assert.Equal(t, 7.5, dist.Buckets[15].Score)
	assert.Equal(t, 10.0, dist.Buckets[20].Score)
}

func TestBuildScoreDistribution_SegmentsSumToTotal(t *testing.T) {
	ratings := []*models.Rating{
		ratingWith(types.ContentTypeMovie, 8),
		ratingWith(types.ContentTypeSeries, 8),
		ratingWith(types.ContentTypeBook, 8),
		ratingWith(types.ContentTypeMovie, 8),
	}

	dist := BuildScoreDistribution(ratings)

	bucket := dist.Buckets[16]
	assert.Equal(t, int64(4), bucket.TotalCount)

	var segSum int64
	for _, seg := range bucket.Segments {
		segSum += seg.Count
	}
	assert.Equal(t, bucket.TotalCount, segSum)

	// 类别顺序稳定：movie 在 series 前
	assert.Equal(t, types.ContentTypeMovie, bucket.Segments[0].ContentType)
	assert.Equal(t, int64(2), bucket.Segments[0].Count)
}

func TestBuildScoreDistribution_SnapsUnalignedScores(t *testing.T) {
	// 历史数据可能不在 0.5 档位上
	ratings := []*models.Rating{
		ratingWith(types.ContentTypeMovie, 7.3),
		ratingWith(types.ContentTypeMovie, 7.1),
	}

	dist := BuildScoreDistribution(ratings)

	assert.Equal(t, int64(1), dist.Buckets[15].TotalCount) // 7.3 -> 7.5
	assert.Equal(t, int64(1), dist.Buckets[14].TotalCount) // 7.1 -> 7.0
	assert.Equal(t, int64(2), dist.TotalRatings)
}

func TestSnapScore(t *testing.T) {
	assert.Equal(t, 7.5, types.SnapScore(7.3))
	assert.Equal(t, 7.0, types.SnapScore(7.2))
	assert.Equal(t, 0.0, types.SnapScore(-1))
	assert.Equal(t, 10.0, types.SnapScore(11))
	assert.Equal(t, 8.5, types.SnapScore(8.5))
}
