package types

import "time"

type ToggleBookmarkRequest struct {
	ContentType     string `json:"content_type" binding:"required"`
	ContentID       string `json:"content_id" binding:"required"`
	ContentTitle    string `json:"content_title"`
	ContentImageURL string `json:"content_image_url"`
}

type BookmarkResponse struct {
	ID              uint64    `json:"id"`
	ContentType     string    `json:"content_type"`
	ContentID       string    `json:"content_id"`
	ContentTitle    string    `json:"content_title"`
	ContentImageURL string    `json:"content_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// GroupedBookmarksResponse 按类别分组展示
type GroupedBookmarksResponse struct {
	Groups map[string][]*BookmarkResponse `json:"groups"`
	Total  int64                          `json:"total"`
}
