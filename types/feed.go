package types

import "time"

// 趋势榜窗口与容量
const (
	FriendsTrendingDays = 7
	GlobalTrendingDays  = 30
	SuggestionDays      = 90
	TrendingLimit       = 15
	// SuggestionMinScore 好友推荐的最低分数线
	SuggestionMinScore = 8.0
)

// TrendingFriendItem 好友动态榜单项：按点赞数排序
type TrendingFriendItem struct {
	RatingID        uint64    `json:"rating_id"`
	UserID          uint64    `json:"user_id"`
	Nickname        string    `json:"nickname"`
	Avatar          string    `json:"avatar"`
	ContentType     string    `json:"content_type"`
	ContentID       string    `json:"content_id"`
	ContentTitle    string    `json:"content_title"`
	ContentImageURL string    `json:"content_image_url"`
	Score           float64   `json:"score"`
	ReviewText      string    `json:"review_text"`
	HasSpoiler      bool      `json:"has_spoiler"`
	LikeCount       int64     `json:"like_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// GlobalTrendingItem 全站热榜项：按评分人数排序
type GlobalTrendingItem struct {
	ContentType     string  `json:"content_type"`
	ContentID       string  `json:"content_id"`
	ContentTitle    string  `json:"content_title"`
	ContentImageURL string  `json:"content_image_url"`
	CountOfRatings  int64   `json:"count_of_ratings"`
	AverageScore    float64 `json:"average_score"`
}

// SuggestedItem 好友高分推荐项：friendCount 优先，bestScore 其次
type SuggestedItem struct {
	ContentType     string  `json:"content_type"`
	ContentID       string  `json:"content_id"`
	ContentTitle    string  `json:"content_title"`
	ContentImageURL string  `json:"content_image_url"`
	BestScore       float64 `json:"best_score"`
	FriendCount     int     `json:"friend_count"`
}
