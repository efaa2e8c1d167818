package service

import (
	"Rately/config"
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/models"
	"Rately/pkg/log"
	"Rately/pkg/rocketmq"
	"Rately/pkg/snowflake"
	"Rately/types"
	"context"
	"encoding/json"
	"time"

	rmq "github.com/apache/rocketmq-client-go/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IRatingService = (*RatingService)(nil)

type IRatingService interface {
	UpsertRating(ctx context.Context, userID uint64, req *types.UpsertRatingRequest) (*types.RatingResponse, error)
	GetRating(ctx context.Context, userID uint64, contentType, contentID string) (*types.RatingResponse, error)
	ListRatings(ctx context.Context, userID uint64, req *types.ListRatingsRequest) (*types.ListRatingsResponse, error)
	DeleteRating(ctx context.Context, userID uint64, ratingID uint64) error
}

type RatingService struct {
	RatingDAO *dao.RatingDAO
	StatusDAO *dao.ContentStatusDAO
	StatsDAO  *dao.UserStatsDAO
	Cache     *cache.AggregateStorage
	Producer  rmq.Producer
	Config    *config.Config
}

// ratingEvent 评分写入事件，投递到 MQ 供下游（搜索、画像）消费
type ratingEvent struct {
	Action      string  `json:"action"` // upsert | delete
	UserID      uint64  `json:"user_id"`
	ContentType string  `json:"content_type"`
	ContentID   string  `json:"content_id"`
	Score       float64 `json:"score,omitempty"`
	OccurredAt  int64   `json:"occurred_at"`
}

// UpsertRating 提交或修改评分
// 携带状态时与评分同一事务写入，避免出现"评分成功但状态丢失"
func (s *RatingService) UpsertRating(ctx context.Context, userID uint64, req *types.UpsertRatingRequest) (*types.RatingResponse, error) {
	if !types.IsValidContentType(req.ContentType) {
		return nil, types.ErrInvalidContentType
	}
	if req.Score < types.ScoreMin || req.Score > types.ScoreMax {
		return nil, types.ErrInvalidScore
	}
	if req.Status != "" && !types.IsValidStatus(req.Status) {
		return nil, types.ErrInvalidStatus
	}

	rating := &models.Rating{
		ID:              uint64(snowflake.GenID()),
		UserID:          userID,
		ContentType:     req.ContentType,
		ContentID:       req.ContentID,
		ContentTitle:    req.ContentTitle,
		ContentImageURL: req.ContentImageURL,
		Score:           types.SnapScore(req.Score),
		ReviewText:      req.ReviewText,
		PrivateNote:     req.PrivateNote,
		HasSpoiler:      req.HasSpoiler,
	}

	// 专辑可附带单曲评分，分值同样对齐到 0.5 档位
	if req.ContentSubtype == types.MusicSubtypeAlbum && len(req.TrackRatings) > 0 {
		rating.ContentSubtype = req.ContentSubtype
		entries := make([]types.TrackRatingEntry, 0, len(req.TrackRatings))
		for _, e := range req.TrackRatings {
			if e.Score < types.ScoreMin || e.Score > types.ScoreMax {
				return nil, types.ErrInvalidScore
			}
			e.Score = types.SnapScore(e.Score)
			entries = append(entries, e)
		}
		data, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		rating.TrackRatings = data
	} else {
		rating.ContentSubtype = req.ContentSubtype
	}

	existing, err := s.RatingDAO.GetByKey(ctx, userID, req.ContentType, req.ContentID)
	if err != nil {
		return nil, err
	}

	err = s.RatingDAO.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.RatingDAO.UpsertTx(tx, rating); err != nil {
			return err
		}
		if req.Status != "" {
			return s.StatusDAO.UpsertTx(tx, userID, req.ContentType, req.ContentID, req.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 首次评分计入用户评分数
	if existing == nil {
		if err := s.StatsDAO.IncrRatingCount(ctx, userID, 1); err != nil {
			log.L.Error("评分计数更新失败", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}

	// 评分变动后聚合视图全部失效
	s.Cache.Invalidate(ctx, userID, cache.GroupRatings, cache.GroupChallenges, cache.GroupFeed)

	s.publishEvent(&ratingEvent{
		Action:      "upsert",
		UserID:      userID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Score:       rating.Score,
		OccurredAt:  time.Now().Unix(),
	})

	return toRatingResponse(rating), nil
}

// GetRating 查询用户对某内容的评分，不存在返回 nil
func (s *RatingService) GetRating(ctx context.Context, userID uint64, contentType, contentID string) (*types.RatingResponse, error) {
	rating, err := s.RatingDAO.GetByKey(ctx, userID, contentType, contentID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, nil
	}
	return toRatingResponse(rating), nil
}

// ListRatings 分页评分历史，可按类别过滤
func (s *RatingService) ListRatings(ctx context.Context, userID uint64, req *types.ListRatingsRequest) (*types.ListRatingsResponse, error) {
	if req.ContentType != "" && !types.IsValidContentType(req.ContentType) {
		return nil, types.ErrInvalidContentType
	}

	page := req.Page
	if page <= 0 {
		page = types.DefaultPage
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}

	ratings, total, err := s.RatingDAO.ListByUser(ctx, userID, req.ContentType, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ListRatingsResponse{
		Ratings: make([]*types.RatingResponse, 0, len(ratings)),
		Total:   total,
	}
	for _, r := range ratings {
		resp.Ratings = append(resp.Ratings, toRatingResponse(r))
	}
	return resp, nil
}

// DeleteRating 删除评分，记录不存在时按空操作处理
func (s *RatingService) DeleteRating(ctx context.Context, userID uint64, ratingID uint64) error {
	rating, err := s.RatingDAO.FindOne(ctx, "id = ? AND user_id = ?", ratingID, userID)
	if err != nil {
		return err
	}
	if rating == nil {
		return nil
	}

	if err := s.RatingDAO.DeleteByID(ctx, userID, ratingID); err != nil {
		return err
	}
	if err := s.StatsDAO.IncrRatingCount(ctx, userID, -1); err != nil {
		log.L.Error("评分计数更新失败", zap.Uint64("user_id", userID), zap.Error(err))
	}

	s.Cache.Invalidate(ctx, userID, cache.GroupRatings, cache.GroupChallenges, cache.GroupFeed)

	s.publishEvent(&ratingEvent{
		Action:      "delete",
		UserID:      userID,
		ContentType: rating.ContentType,
		ContentID:   rating.ContentID,
		OccurredAt:  time.Now().Unix(),
	})
	return nil
}

// publishEvent 投递评分事件，尽力而为，失败只记日志
func (s *RatingService) publishEvent(event *ratingEvent) {
	if s.Producer == nil || s.Config.RocketMQ == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := rocketmq.SendMsg(s.Producer, s.Config.RocketMQ.RatingTopic, body); err != nil {
		log.L.Error("评分事件投递失败",
			zap.String("action", event.Action),
			zap.Uint64("user_id", event.UserID),
			zap.Error(err))
	}
}

func toRatingResponse(r *models.Rating) *types.RatingResponse {
	resp := &types.RatingResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		ContentType:     r.ContentType,
		ContentID:       r.ContentID,
		ContentTitle:    r.ContentTitle,
		ContentImageURL: r.ContentImageURL,
		Score:           types.SnapScore(r.Score),
		ReviewText:      r.ReviewText,
		PrivateNote:     r.PrivateNote,
		HasSpoiler:      r.HasSpoiler,
		ContentSubtype:  r.ContentSubtype,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if len(r.TrackRatings) > 0 {
		var entries []types.TrackRatingEntry
		if err := json.Unmarshal(r.TrackRatings, &entries); err == nil {
			for i := range entries {
				entries[i].Score = types.SnapScore(entries[i].Score)
			}
			resp.TrackRatings = entries
		}
	}
	return resp
}
