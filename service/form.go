package service

import (
	"Rately/dao"
	"Rately/pkg/metadata"
	"Rately/types"
	"context"
	"encoding/json"
	"errors"
	"math"
)

var _ IFormService = (*FormService)(nil)

type IFormService interface {
	LoadRatingForm(ctx context.Context, userID uint64, contentType, contentID string) (*types.RatingForm, error)
	SubmitRatingForm(ctx context.Context, userID uint64, req *types.UpsertRatingRequest) (*types.RatingForm, error)
}

// FormService 评分表单：Loading -> Ready -> Saving -> Saved | SaveFailed
// Loading 对应元数据与既有评分的并行加载，Saving 之后的落库走 RatingService
type FormService struct {
	Metadata    *metadata.Registry
	RatingDAO   *dao.RatingDAO
	StatusDAO   *dao.ContentStatusDAO
	AnythingDAO *dao.AnythingItemDAO
	RatingSvc   IRatingService
}

// LoadRatingForm 打开评分面板：拉内容摘要，存在既有评分时预填
// 预填只发生在这一步，之后的编辑不再回读
func (s *FormService) LoadRatingForm(ctx context.Context, userID uint64, contentType, contentID string) (*types.RatingForm, error) {
	if !types.IsValidContentType(contentType) {
		return nil, types.ErrInvalidContentType
	}

	summary, err := s.loadSummary(ctx, contentType, contentID)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return nil, types.ErrContentNotFound
		}
		return nil, err
	}

	form := &types.RatingForm{
		State:   types.FormStateReady,
		Content: summary,
	}

	rating, err := s.RatingDAO.GetByKey(ctx, userID, contentType, contentID)
	if err != nil {
		return nil, err
	}
	if rating != nil {
		form.Prefilled = true
		form.Score = types.SnapScore(rating.Score)
		form.ReviewText = rating.ReviewText
		form.PrivateNote = rating.PrivateNote
		form.HasSpoiler = rating.HasSpoiler
		if len(rating.TrackRatings) > 0 {
			var entries []types.TrackRatingEntry
			if err := json.Unmarshal(rating.TrackRatings, &entries); err == nil {
				form.TrackRatings = entries
			}
		}
	}

	status, err := s.StatusDAO.GetByKey(ctx, userID, contentType, contentID)
	if err != nil {
		return nil, err
	}
	if status != nil {
		form.Status = status.Status
	}

	// 专辑补全曲目列表：已打分的沿用既有分值，未打分的补零分占位
	if summary.Subtype == types.MusicSubtypeAlbum {
		tracks, err := s.Metadata.Music().GetAlbumTracks(ctx, contentID)
		if err == nil {
			form.TrackRatings = MergeTrackRatings(tracks, form.TrackRatings)
		}
		form.TrackAverage = TrackAverage(form.TrackRatings)
	}

	return form, nil
}

// SubmitRatingForm 提交表单，落库失败时进入 SaveFailed 状态并保留用户输入
func (s *FormService) SubmitRatingForm(ctx context.Context, userID uint64, req *types.UpsertRatingRequest) (*types.RatingForm, error) {
	form := &types.RatingForm{
		State:        types.FormStateSaving,
		Score:        req.Score,
		ReviewText:   req.ReviewText,
		PrivateNote:  req.PrivateNote,
		HasSpoiler:   req.HasSpoiler,
		Status:       req.Status,
		TrackRatings: req.TrackRatings,
	}

	resp, err := s.RatingSvc.UpsertRating(ctx, userID, req)
	if err != nil {
		form.State = types.FormStateSaveFailed
		return form, err
	}

	form.State = types.FormStateSaved
	form.Prefilled = true
	form.Score = resp.Score
	form.TrackRatings = resp.TrackRatings
	form.TrackAverage = TrackAverage(resp.TrackRatings)
	return form, nil
}

func (s *FormService) loadSummary(ctx context.Context, contentType, contentID string) (*types.ContentSummary, error) {
	if contentType == types.ContentTypeAnything {
		item, err := s.AnythingDAO.GetByShareCode(ctx, contentID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, metadata.ErrNotFound
		}
		return &types.ContentSummary{
			ContentType: types.ContentTypeAnything,
			ContentID:   contentID,
			Title:       item.Title,
			ImageURL:    item.ImageURL,
		}, nil
	}
	return s.Metadata.GetSummary(ctx, contentType, contentID)
}

// MergeTrackRatings 以曲目列表为准合并既有单曲评分，保持曲目顺序
func MergeTrackRatings(tracks []types.Track, existing []types.TrackRatingEntry) []types.TrackRatingEntry {
	scores := make(map[string]float64, len(existing))
	for _, e := range existing {
		scores[e.TrackID] = types.SnapScore(e.Score)
	}

	merged := make([]types.TrackRatingEntry, 0, len(tracks))
	for _, t := range tracks {
		merged = append(merged, types.TrackRatingEntry{
			TrackID:     t.TrackID,
			TrackName:   t.TrackName,
			TrackNumber: t.TrackNumber,
			Score:       scores[t.TrackID],
		})
	}
	return merged
}

// TrackAverage 已打分曲目（分值大于 0）的平均分，保留一位小数，无曲目打分时为 nil
func TrackAverage(entries []types.TrackRatingEntry) *float64 {
	var sum float64
	var count int
	for _, e := range entries {
		if e.Score > 0 {
			sum += types.SnapScore(e.Score)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := math.Round(sum/float64(count)*10) / 10
	return &avg
}
