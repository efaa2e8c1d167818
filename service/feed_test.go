package service

import (
	"Rately/models"
	"Rately/types"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func feedRating(id, userID uint64, contentID string, score float64, createdAt time.Time) *models.Rating {
	return &models.Rating{
		ID:          id,
		UserID:      userID,
		ContentType: types.ContentTypeMovie,
		ContentID:   contentID,
		Score:       score,
		PrivateNote: "绝对不能外泄",
		CreatedAt:   createdAt,
	}
}

func TestRankFriendsTrending_SortAndLimit(t *testing.T) {
	now := time.Now()
	ratings := make([]*models.Rating, 0, 20)
	likes := make(map[uint64]int64)
	for i := uint64(1); i <= 20; i++ {
		ratings = append(ratings, feedRating(i, 100+i, "m1", 8, now.Add(-time.Duration(i)*time.Minute)))
		likes[i] = int64(i)
	}

	items := RankFriendsTrending(ratings, likes, nil)

	// 截取前 15，点赞数降序
	assert.Len(t, items, types.TrendingLimit)
	assert.Equal(t, int64(20), items[0].LikeCount)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].LikeCount, items[i].LikeCount)
	}
}

func TestRankFriendsTrending_TieBreakByTime(t *testing.T) {
	now := time.Now()
	ratings := []*models.Rating{
		feedRating(1, 101, "m1", 8, now.Add(-2*time.Hour)),
		feedRating(2, 102, "m2", 9, now.Add(-1*time.Hour)),
	}
	likes := map[uint64]int64{1: 5, 2: 5}

	items := RankFriendsTrending(ratings, likes, nil)

	// 同点赞数，新的在前
	assert.Equal(t, uint64(2), items[0].RatingID)
	assert.Equal(t, uint64(1), items[1].RatingID)
}

func TestRankFriendsTrending_FillsUserInfo(t *testing.T) {
	ratings := []*models.Rating{feedRating(1, 101, "m1", 8, time.Now())}
	users := []*models.User{{ID: 101, Nickname: "小王", Avatar: "a.jpg"}}

	items := RankFriendsTrending(ratings, nil, users)

	assert.Equal(t, "小王", items[0].Nickname)
	assert.Equal(t, "a.jpg", items[0].Avatar)
}

func TestAggregateGlobalTrending(t *testing.T) {
	now := time.Now()
	ratings := []*models.Rating{
		feedRating(1, 101, "hot", 8, now),
		feedRating(2, 102, "hot", 9, now),
		feedRating(3, 103, "hot", 7, now),
		feedRating(4, 104, "cold", 10, now),
	}

	items := AggregateGlobalTrending(ratings)

	assert.Len(t, items, 2)
	assert.Equal(t, "hot", items[0].ContentID)
	assert.Equal(t, int64(3), items[0].CountOfRatings)
	assert.InDelta(t, 8.0, items[0].AverageScore, 1e-9)
	assert.Equal(t, "cold", items[1].ContentID)
	assert.Equal(t, int64(1), items[1].CountOfRatings)
}

func TestAggregateGlobalTrending_RoundsAverage(t *testing.T) {
	now := time.Now()
	ratings := []*models.Rating{
		feedRating(1, 101, "hot", 8, now),
		feedRating(2, 102, "hot", 8, now),
		feedRating(3, 103, "hot", 7.5, now),
	}

	items := AggregateGlobalTrending(ratings)

	// 7.8333... 保留一位小数
	assert.Equal(t, 7.8, items[0].AverageScore)
}

func TestAggregateGlobalTrending_TieBreakByAverage(t *testing.T) {
	now := time.Now()
	ratings := []*models.Rating{
		feedRating(1, 101, "a", 6, now),
		feedRating(2, 102, "b", 9, now),
	}

	items := AggregateGlobalTrending(ratings)

	// 同评分人数，均分高的在前
	assert.Equal(t, "b", items[0].ContentID)
}

func TestBuildSuggestions(t *testing.T) {
	now := time.Now()
	ratings := []*models.Rating{
		feedRating(1, 101, "gem", 8.5, now),
		feedRating(2, 102, "gem", 9.5, now),
		feedRating(3, 103, "solo", 8, now),
		// 低于 8 分不进推荐
		feedRating(4, 104, "meh", 7.5, now),
		// 自己已评过的排除
		feedRating(5, 105, "seen", 10, now),
	}
	rated := map[string]struct{}{
		types.ContentTypeMovie + ":seen": {},
	}

	items := BuildSuggestions(ratings, rated)

	assert.Len(t, items, 2)
	assert.Equal(t, "gem", items[0].ContentID)
	assert.Equal(t, 2, items[0].FriendCount)
	assert.Equal(t, 9.5, items[0].BestScore)
	assert.Equal(t, "solo", items[1].ContentID)
	assert.Equal(t, 1, items[1].FriendCount)
}

func TestBuildSuggestions_BoundaryScore(t *testing.T) {
	// 正好 8 分要进推荐
	ratings := []*models.Rating{feedRating(1, 101, "edge", 8, time.Now())}

	items := BuildSuggestions(ratings, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, 8.0, items[0].BestScore)
}

func TestSharedViewsOmitPrivateNote(t *testing.T) {
	// 私密备注不出现在任何共享视图的序列化结果里
	ratings := []*models.Rating{feedRating(1, 101, "m1", 8, time.Now())}

	items := RankFriendsTrending(ratings, nil, nil)
	assert.NotContains(t, itemsJSON(t, items), "绝对不能外泄")

	suggestions := BuildSuggestions(ratings, nil)
	assert.NotContains(t, itemsJSON(t, suggestions), "绝对不能外泄")
}
