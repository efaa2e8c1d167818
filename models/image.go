package models

import "time"

type Image struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user" json:"user_id"`
	OssKey    string    `gorm:"column:oss_key;type:varchar(255);not null" json:"oss_key"`
	Width     int       `gorm:"column:width;not null;default:0" json:"width"`
	Height    int       `gorm:"column:height;not null;default:0" json:"height"`
	Status    int       `gorm:"column:status;not null;default:0" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Image) TableName() string {
	return "images"
}
