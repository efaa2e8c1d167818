package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnythingItem 用户自建的可评分条目
type AnythingItem struct {
	ID          uint64         `gorm:"column:id;primary_key" json:"id"`
	CreatorID   uint64         `gorm:"column:creator_id;not null;index:idx_creator" json:"creator_id"`
	Title       string         `gorm:"column:title;type:varchar(200);not null;uniqueIndex:uk_title" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	ImageURL    string         `gorm:"column:image_url;type:varchar(255);not null;default:''" json:"image_url"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	ShareCode   string         `gorm:"column:share_code;type:varchar(24);not null;default:''" json:"share_code"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (AnythingItem) TableName() string {
	return "anything_items"
}
