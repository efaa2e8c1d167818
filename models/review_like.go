package models

import "time"

// ReviewLike 对评分(及其短评)的点赞
type ReviewLike struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	RatingID  uint64    `gorm:"column:rating_id;not null;index:idx_rating" json:"rating_id"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"` // 1:点赞 0:已取消
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
