package models

import "time"

// ContentStatus 内容状态：想看/在看/看过
type ContentStatus struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_content" json:"user_id"`
	ContentType string    `gorm:"column:content_type;type:varchar(16);not null;uniqueIndex:uk_user_content" json:"content_type"`
	ContentID   string    `gorm:"column:content_id;type:varchar(64);not null;uniqueIndex:uk_user_content" json:"content_id"`
	Status      string    `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ContentStatus) TableName() string {
	return "content_status"
}
