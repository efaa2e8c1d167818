package models

import "time"

// PinnedItem 个人主页置顶位，每人最多 5 个
// 标题和封面是置顶时刻的快照，不跟随元数据服务更新
type PinnedItem struct {
	ID              uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID          uint64    `gorm:"column:user_id;not null;index:idx_user;uniqueIndex:uk_user_position" json:"user_id"`
	ContentType     string    `gorm:"column:content_type;type:varchar(16);not null" json:"content_type"`
	ContentID       string    `gorm:"column:content_id;type:varchar(64);not null" json:"content_id"`
	ContentTitle    string    `gorm:"column:content_title;type:varchar(200);not null" json:"content_title"`
	ContentImageURL string    `gorm:"column:content_image_url;type:varchar(255);not null;default:''" json:"content_image_url"`
	Position        int       `gorm:"column:position;not null;uniqueIndex:uk_user_position" json:"position"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PinnedItem) TableName() string {
	return "pinned_items"
}
