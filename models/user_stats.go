package models

import "time"

// UserStats 用户计数冗余表
type UserStats struct {
	UserID         uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	FollowerCount  int64     `gorm:"column:follower_count;default:0" json:"follower_count"`
	FollowingCount int64     `gorm:"column:following_count;default:0" json:"following_count"`
	RatingCount    int64     `gorm:"column:rating_count;default:0" json:"rating_count"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
