package service

import (
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/types"
	"context"
	"encoding/json"
	"errors"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) error
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) (*types.GetFollowingListResponse, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	StatsDAO  *dao.UserStatsDAO
	UserDAO   *dao.Users
	Cache     *cache.AggregateStorage
	Notify    *cache.NotifyStorage
}

func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) error {
	// 不能关注自己
	if followerID == followeeID {
		return errors.New("不能关注自己")
	}

	// 校验被关注用户是否存在
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", followeeID)
	if err != nil {
		return err
	}
	if !exist {
		return errors.New("用户不存在")
	}

	// 检查是否已经关注
	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if isFollowing {
		// 已经关注过，直接返回成功
		return nil
	}

	if err := s.FollowDAO.SetStatus(ctx, followerID, followeeID, 1); err != nil {
		return err
	}

	// 更新统计：被关注人的粉丝数+1，关注人的关注数+1
	if err := s.StatsDAO.IncrFollowerCount(ctx, followeeID, 1); err != nil {
		return err
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, 1); err != nil {
		return err
	}

	// 关注关系变了，动态榜和推荐都要重算
	s.Cache.Invalidate(ctx, followerID, cache.GroupFeed)

	body, _ := json.Marshal(map[string]uint64{"follower_id": followerID})
	s.Notify.Publish(ctx, &cache.NotifyEvent{
		Type:   cache.EventNewFollower,
		UserID: followeeID,
		Body:   body,
	})

	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return errors.New("不能取消关注自己")
	}

	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !isFollowing {
		// 没有关注过，直接返回成功
		return nil
	}

	if err := s.FollowDAO.SetStatus(ctx, followerID, followeeID, 0); err != nil {
		return err
	}

	if err := s.StatsDAO.IncrFollowerCount(ctx, followeeID, -1); err != nil {
		return err
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, -1); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, followerID, cache.GroupFeed)

	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return stats.FollowerCount, nil
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return stats.FollowingCount, nil
}

func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) (*types.GetFollowingListResponse, error) {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}

	rows, total, err := s.FollowDAO.GetFollowingList(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &types.GetFollowingListResponse{
		Following: make([]*types.FollowingItem, 0, len(rows)),
		Total:     total,
	}
	for _, row := range rows {
		resp.Following = append(resp.Following, &types.FollowingItem{
			UserID:     row.UserID,
			Nickname:   row.Nickname,
			Avatar:     row.Avatar,
			FollowTime: row.FollowTime,
		})
	}
	resp.NextCursor = int64(offset + len(rows))
	resp.HasMore = int64(offset+len(rows)) < total
	return resp, nil
}
