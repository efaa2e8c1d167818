package types

import "time"

type CreateAnythingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type AnythingItemResponse struct {
	ID          uint64    `json:"id"`
	CreatorID   uint64    `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Tags        []string  `json:"tags"`
	ShareCode   string    `json:"share_code"`
	CreatedAt   time.Time `json:"created_at"`
}
