package service

import (
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/models"
	"Rately/types"
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFriendsTrending(ctx context.Context, userID uint64) ([]*types.TrendingFriendItem, error)
	GetGlobalTrending(ctx context.Context) ([]*types.GlobalTrendingItem, error)
	GetSuggestions(ctx context.Context, userID uint64) ([]*types.SuggestedItem, error)
}

type FeedService struct {
	RatingDAO *dao.RatingDAO
	FollowDAO *dao.UserFollowDAO
	LikeDAO   *dao.ReviewLikeDAO
	UserDAO   *dao.Users
	Cache     *cache.AggregateStorage
}

const (
	friendsTrendingCacheName = "friends_trending"
	globalTrendingCacheName  = "global_trending"
	suggestionsCacheName     = "suggestions"
	// 全站榜单与单个用户无关，缓存挂在哨兵用户 0 名下
	globalCacheUserID = 0
)

// GetFriendsTrending 好友动态榜：近 7 天好友评分，按点赞数排序，前 15 条
func (s *FeedService) GetFriendsTrending(ctx context.Context, userID uint64) ([]*types.TrendingFriendItem, error) {
	if val, ok := s.Cache.Get(ctx, userID, cache.GroupFeed, friendsTrendingCacheName); ok {
		var items []*types.TrendingFriendItem
		if err := json.Unmarshal([]byte(val), &items); err == nil {
			return items, nil
		}
	}

	followees, err := s.FollowDAO.GetFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followees) == 0 {
		return []*types.TrendingFriendItem{}, nil
	}

	since := time.Now().AddDate(0, 0, -types.FriendsTrendingDays)
	ratings, err := s.RatingDAO.FindByUsersSince(ctx, followees, since)
	if err != nil {
		return nil, err
	}

	ratingIDs := make([]uint64, 0, len(ratings))
	userIDs := make([]uint64, 0, len(ratings))
	for _, r := range ratings {
		ratingIDs = append(ratingIDs, r.ID)
		userIDs = append(userIDs, r.UserID)
	}
	likeCounts, err := s.LikeDAO.CountByRatingIDs(ctx, ratingIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.UserDAO.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	items := RankFriendsTrending(ratings, likeCounts, users)

	if data, err := json.Marshal(items); err == nil {
		s.Cache.Set(ctx, userID, cache.GroupFeed, friendsTrendingCacheName, string(data))
	}
	return items, nil
}

// GetGlobalTrending 全站热榜：近 30 天按评分人数排序，前 15 个内容
func (s *FeedService) GetGlobalTrending(ctx context.Context) ([]*types.GlobalTrendingItem, error) {
	if val, ok := s.Cache.Get(ctx, globalCacheUserID, cache.GroupFeed, globalTrendingCacheName); ok {
		var items []*types.GlobalTrendingItem
		if err := json.Unmarshal([]byte(val), &items); err == nil {
			return items, nil
		}
	}

	since := time.Now().AddDate(0, 0, -types.GlobalTrendingDays)
	ratings, err := s.RatingDAO.FindSince(ctx, since)
	if err != nil {
		return nil, err
	}

	items := AggregateGlobalTrending(ratings)

	if data, err := json.Marshal(items); err == nil {
		s.Cache.Set(ctx, globalCacheUserID, cache.GroupFeed, globalTrendingCacheName, string(data))
	}
	return items, nil
}

// GetSuggestions 好友高分推荐：近 90 天好友打出 8 分以上的内容，排除自己已评分的
func (s *FeedService) GetSuggestions(ctx context.Context, userID uint64) ([]*types.SuggestedItem, error) {
	if val, ok := s.Cache.Get(ctx, userID, cache.GroupFeed, suggestionsCacheName); ok {
		var items []*types.SuggestedItem
		if err := json.Unmarshal([]byte(val), &items); err == nil {
			return items, nil
		}
	}

	followees, err := s.FollowDAO.GetFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followees) == 0 {
		return []*types.SuggestedItem{}, nil
	}

	since := time.Now().AddDate(0, 0, -types.SuggestionDays)
	ratings, err := s.RatingDAO.FindByUsersSince(ctx, followees, since)
	if err != nil {
		return nil, err
	}
	rated, err := s.RatingDAO.FindRatedKeysByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := BuildSuggestions(ratings, rated)

	if data, err := json.Marshal(items); err == nil {
		s.Cache.Set(ctx, userID, cache.GroupFeed, suggestionsCacheName, string(data))
	}
	return items, nil
}

// RankFriendsTrending 好友动态排序：点赞数降序，同点赞数按时间倒序，截取前 15
// 私密备注不进入任何共享视图
func RankFriendsTrending(ratings []*models.Rating, likeCounts map[uint64]int64, users []*models.User) []*types.TrendingFriendItem {
	userIndex := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		userIndex[u.ID] = u
	}

	items := make([]*types.TrendingFriendItem, 0, len(ratings))
	for _, r := range ratings {
		item := &types.TrendingFriendItem{
			RatingID:        r.ID,
			UserID:          r.UserID,
			ContentType:     r.ContentType,
			ContentID:       r.ContentID,
			ContentTitle:    r.ContentTitle,
			ContentImageURL: r.ContentImageURL,
			Score:           types.SnapScore(r.Score),
			ReviewText:      r.ReviewText,
			HasSpoiler:      r.HasSpoiler,
			LikeCount:       likeCounts[r.ID],
			CreatedAt:       r.CreatedAt,
		}
		if u, ok := userIndex[r.UserID]; ok {
			item.Nickname = u.Nickname
			item.Avatar = u.Avatar
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].LikeCount != items[j].LikeCount {
			return items[i].LikeCount > items[j].LikeCount
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > types.TrendingLimit {
		items = items[:types.TrendingLimit]
	}
	return items
}

// AggregateGlobalTrending 按内容聚合：评分人数降序，同人数按均分降序，截取前 15
func AggregateGlobalTrending(ratings []*models.Rating) []*types.GlobalTrendingItem {
	type agg struct {
		item  *types.GlobalTrendingItem
		total float64
	}
	byContent := make(map[string]*agg)
	order := make([]string, 0)

	for _, r := range ratings {
		key := r.ContentType + ":" + r.ContentID
		a, ok := byContent[key]
		if !ok {
			a = &agg{item: &types.GlobalTrendingItem{
				ContentType:     r.ContentType,
				ContentID:       r.ContentID,
				ContentTitle:    r.ContentTitle,
				ContentImageURL: r.ContentImageURL,
			}}
			byContent[key] = a
			order = append(order, key)
		}
		a.item.CountOfRatings++
		a.total += types.SnapScore(r.Score)
	}

	items := make([]*types.GlobalTrendingItem, 0, len(byContent))
	for _, key := range order {
		a := byContent[key]
		// 均分保留一位小数，排序同样比较舍入后的值
		a.item.AverageScore = math.Round(a.total/float64(a.item.CountOfRatings)*10) / 10
		items = append(items, a.item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CountOfRatings != items[j].CountOfRatings {
			return items[i].CountOfRatings > items[j].CountOfRatings
		}
		return items[i].AverageScore > items[j].AverageScore
	})

	if len(items) > types.TrendingLimit {
		items = items[:types.TrendingLimit]
	}
	return items
}

// BuildSuggestions 好友高分推荐：
// 只取 8 分及以上，排除自己已评分的内容，按推荐好友数降序、最高分降序
func BuildSuggestions(ratings []*models.Rating, rated map[string]struct{}) []*types.SuggestedItem {
	byContent := make(map[string]*types.SuggestedItem)
	order := make([]string, 0)

	for _, r := range ratings {
		score := types.SnapScore(r.Score)
		if score < types.SuggestionMinScore {
			continue
		}
		key := r.ContentType + ":" + r.ContentID
		if _, ok := rated[key]; ok {
			continue
		}
		item, ok := byContent[key]
		if !ok {
			item = &types.SuggestedItem{
				ContentType:     r.ContentType,
				ContentID:       r.ContentID,
				ContentTitle:    r.ContentTitle,
				ContentImageURL: r.ContentImageURL,
			}
			byContent[key] = item
			order = append(order, key)
		}
		item.FriendCount++
		if score > item.BestScore {
			item.BestScore = score
		}
	}

	items := make([]*types.SuggestedItem, 0, len(byContent))
	for _, key := range order {
		items = append(items, byContent[key])
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].FriendCount != items[j].FriendCount {
			return items[i].FriendCount > items[j].FriendCount
		}
		return items[i].BestScore > items[j].BestScore
	})

	if len(items) > types.TrendingLimit {
		items = items[:types.TrendingLimit]
	}
	return items
}
