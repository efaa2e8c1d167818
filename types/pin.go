package types

import "time"

type PinItemRequest struct {
	ContentType     string `json:"content_type" binding:"required"`
	ContentID       string `json:"content_id" binding:"required"`
	ContentTitle    string `json:"content_title" binding:"required"`
	ContentImageURL string `json:"content_image_url"`
	// Position 1-5，可选，不传时取最小空位
	Position int `json:"position"`
}

type PinnedItemResponse struct {
	ID              uint64    `json:"id"`
	ContentType     string    `json:"content_type"`
	ContentID       string    `json:"content_id"`
	ContentTitle    string    `json:"content_title"`
	ContentImageURL string    `json:"content_image_url"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}
