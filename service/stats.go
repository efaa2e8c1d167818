package service

import (
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/models"
	"Rately/types"
	"context"
	"encoding/json"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	GetScoreDistribution(ctx context.Context, userID uint64) (*types.ScoreDistribution, error)
}

type StatsService struct {
	RatingDAO *dao.RatingDAO
	Cache     *cache.AggregateStorage
}

const distributionCacheName = "score_distribution"

// GetScoreDistribution 用户评分分布视图，结果缓存，评分变动时整组失效
func (s *StatsService) GetScoreDistribution(ctx context.Context, userID uint64) (*types.ScoreDistribution, error) {
	if val, ok := s.Cache.Get(ctx, userID, cache.GroupRatings, distributionCacheName); ok {
		var dist types.ScoreDistribution
		if err := json.Unmarshal([]byte(val), &dist); err == nil {
			return &dist, nil
		}
	}

	ratings, err := s.RatingDAO.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dist := BuildScoreDistribution(ratings)

	if data, err := json.Marshal(dist); err == nil {
		s.Cache.Set(ctx, userID, cache.GroupRatings, distributionCacheName, string(data))
	}
	return dist, nil
}

// BuildScoreDistribution 把评分列表折叠成 21 个 0.5 宽的分布桶
// 桶内按内容类别拆段，类别顺序固定，保证渲染稳定
func BuildScoreDistribution(ratings []*models.Rating) *types.ScoreDistribution {
	type segKey struct {
		bucket      int
		contentType string
	}
	bucketTotals := make([]int64, types.ScoreBucketCount)
	segCounts := make(map[segKey]int64)

	for _, r := range ratings {
		score := types.SnapScore(r.Score)
		idx := int(score * 2)
		bucketTotals[idx]++
		segCounts[segKey{bucket: idx, contentType: r.ContentType}]++
	}

	dist := &types.ScoreDistribution{
		Buckets:      make([]types.ScoreBucket, types.ScoreBucketCount),
		TotalRatings: int64(len(ratings)),
	}
	for i := 0; i < types.ScoreBucketCount; i++ {
		bucket := types.ScoreBucket{
			Score:      float64(i) / 2,
			TotalCount: bucketTotals[i],
			Segments:   make([]types.BucketSegment, 0),
		}
		for _, ct := range types.AllContentTypes {
			if count := segCounts[segKey{bucket: i, contentType: ct}]; count > 0 {
				bucket.Segments = append(bucket.Segments, types.BucketSegment{
					ContentType: ct,
					Count:       count,
				})
			}
		}
		if bucketTotals[i] > dist.MaxCount {
			dist.MaxCount = bucketTotals[i]
		}
		dist.Buckets[i] = bucket
	}
	// maxCount 是柱状图归一化的分母，下限为 1
	if dist.MaxCount < 1 {
		dist.MaxCount = 1
	}
	return dist
}
