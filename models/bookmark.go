package models

import "time"

// Bookmark 稍后再看标记，数量不限，无排序位
type Bookmark struct {
	ID              uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID          uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_content" json:"user_id"`
	ContentType     string    `gorm:"column:content_type;type:varchar(16);not null;uniqueIndex:uk_user_content" json:"content_type"`
	ContentID       string    `gorm:"column:content_id;type:varchar(64);not null;uniqueIndex:uk_user_content" json:"content_id"`
	ContentTitle    string    `gorm:"column:content_title;type:varchar(200);not null;default:''" json:"content_title"`
	ContentImageURL string    `gorm:"column:content_image_url;type:varchar(255);not null;default:''" json:"content_image_url"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
