package types

import (
	"math"
	"time"
)

// 评分约束：0-10，步长 0.5，共 21 个档位
const (
	ScoreMin  = 0.0
	ScoreMax  = 10.0
	ScoreStep = 0.5
)

// SnapScore 把任意分值对齐到 0.5 档位并收敛到 [0, 10]
// 历史数据可能不对齐，所有读写路径都过这一层
func SnapScore(s float64) float64 {
	snapped := math.Round(s*2) / 2
	if snapped < ScoreMin {
		return ScoreMin
	}
	if snapped > ScoreMax {
		return ScoreMax
	}
	return snapped
}

// IsValidScore 校验分值是否正好落在 21 个档位之一
func IsValidScore(s float64) bool {
	if s < ScoreMin || s > ScoreMax {
		return false
	}
	return s == SnapScore(s)
}

// RatingKey 评分的业务主键：一个用户对一个内容最多一条评分
type RatingKey struct {
	UserID      uint64
	ContentType string
	ContentID   string
}

// TrackRatingEntry 专辑内单曲评分，只在 content_subtype = album 时存在
type TrackRatingEntry struct {
	TrackID     string  `json:"track_id"`
	TrackName   string  `json:"track_name"`
	TrackNumber int     `json:"track_number"`
	Score       float64 `json:"score"`
}

type UpsertRatingRequest struct {
	ContentType     string             `json:"content_type" binding:"required"`
	ContentID       string             `json:"content_id" binding:"required"`
	ContentTitle    string             `json:"content_title"`
	ContentImageURL string             `json:"content_image_url"`
	Score           float64            `json:"score"`
	ReviewText      string             `json:"review_text"`
	PrivateNote     string             `json:"private_note"`
	HasSpoiler      bool               `json:"has_spoiler"`
	ContentSubtype  string             `json:"content_subtype"`
	TrackRatings    []TrackRatingEntry `json:"track_ratings"`
	// Status 可选，提交评分时可一并更新观看/阅读状态
	Status string `json:"status"`
}

type RatingResponse struct {
	ID              uint64             `json:"id"`
	UserID          uint64             `json:"user_id"`
	ContentType     string             `json:"content_type"`
	ContentID       string             `json:"content_id"`
	ContentTitle    string             `json:"content_title"`
	ContentImageURL string             `json:"content_image_url"`
	Score           float64            `json:"score"`
	ReviewText      string             `json:"review_text"`
	PrivateNote     string             `json:"private_note,omitempty"`
	HasSpoiler      bool               `json:"has_spoiler"`
	ContentSubtype  string             `json:"content_subtype,omitempty"`
	TrackRatings    []TrackRatingEntry `json:"track_ratings,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type ListRatingsRequest struct {
	ContentType string `form:"content_type"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
}

type ListRatingsResponse struct {
	Ratings []*RatingResponse `json:"ratings"`
	Total   int64             `json:"total"`
}
