package types

import "time"

type GetFollowingListRequest struct {
	Type     string `form:"type" binding:"required"` // following | follower
	Cursor   int64  `form:"cursor"`
	PageSize int    `form:"pageSize"`
}

type FollowingItem struct {
	UserID     uint64    `json:"user_id"`
	Nickname   string    `json:"nickname"`
	Avatar     string    `json:"avatar"`
	FollowTime time.Time `json:"follow_time"`
}

type GetFollowingListResponse struct {
	Following  []*FollowingItem `json:"following"`
	Total      int64            `json:"total"`
	NextCursor int64            `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}
