package service

import (
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/types"
	"context"
	"encoding/json"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	LikeReview(ctx context.Context, userID uint64, ratingID uint64) error
	UnlikeReview(ctx context.Context, userID uint64, ratingID uint64) error
	IsLiked(ctx context.Context, userID uint64, ratingID uint64) (bool, error)
	GetLikeCount(ctx context.Context, ratingID uint64) (int64, error)
}

type LikeService struct {
	LikeDAO   *dao.ReviewLikeDAO
	RatingDAO *dao.RatingDAO
	Notify    *cache.NotifyStorage
}

// LikeReview 点赞评分短评
func (s *LikeService) LikeReview(ctx context.Context, userID uint64, ratingID uint64) error {
	rating, err := s.RatingDAO.FindOne(ctx, "id = ?", ratingID)
	if err != nil {
		return err
	}
	if rating == nil {
		return types.ErrRatingNotFound
	}

	existing, err := s.LikeDAO.GetByRatingUser(ctx, ratingID, userID)
	if err != nil {
		return err
	}
	if existing != nil && existing.Status == 1 {
		// 已点过赞，直接返回成功
		return nil
	}

	if err := s.LikeDAO.SetStatus(ctx, ratingID, userID, 1); err != nil {
		return err
	}

	// 通知被赞的人，不给自己发
	if rating.UserID != userID {
		body, _ := json.Marshal(map[string]uint64{
			"rating_id": ratingID,
			"liker_id":  userID,
		})
		s.Notify.Publish(ctx, &cache.NotifyEvent{
			Type:   cache.EventReviewLiked,
			UserID: rating.UserID,
			Body:   body,
		})
	}
	return nil
}

// UnlikeReview 取消点赞
func (s *LikeService) UnlikeReview(ctx context.Context, userID uint64, ratingID uint64) error {
	existing, err := s.LikeDAO.GetByRatingUser(ctx, ratingID, userID)
	if err != nil {
		return err
	}
	if existing == nil || existing.Status == 0 {
		return nil
	}
	return s.LikeDAO.SetStatus(ctx, ratingID, userID, 0)
}

func (s *LikeService) IsLiked(ctx context.Context, userID uint64, ratingID uint64) (bool, error) {
	return s.LikeDAO.IsLiked(ctx, ratingID, userID)
}

func (s *LikeService) GetLikeCount(ctx context.Context, ratingID uint64) (int64, error) {
	return s.LikeDAO.Count(ctx, "rating_id = ? AND status = 1", ratingID)
}
