package models

import (
	"time"

	"gorm.io/datatypes"
)

// Rating 评分主表
// 业务主键 (user_id, content_type, content_id)：一个用户对一个内容最多一条
type Rating struct {
	ID              uint64  `gorm:"column:id;primary_key" json:"id"`
	UserID          uint64  `gorm:"column:user_id;not null;uniqueIndex:uk_user_content;index:idx_user_created" json:"user_id"`
	ContentType     string  `gorm:"column:content_type;type:varchar(16);not null;uniqueIndex:uk_user_content" json:"content_type"`
	ContentID       string  `gorm:"column:content_id;type:varchar(64);not null;uniqueIndex:uk_user_content;index:idx_content" json:"content_id"`
	ContentTitle    string  `gorm:"column:content_title;type:varchar(200);not null;default:''" json:"content_title"`
	ContentImageURL string  `gorm:"column:content_image_url;type:varchar(255);not null;default:''" json:"content_image_url"`
	Score           float64 `gorm:"column:score;type:decimal(3,1);not null" json:"score"`
	ReviewText      string  `gorm:"column:review_text;type:text" json:"review_text"`
	// PrivateNote 仅本人可见，任何共享视图都不得带出
	PrivateNote    string         `gorm:"column:private_note;type:text" json:"private_note"`
	HasSpoiler     bool           `gorm:"column:has_spoiler;not null;default:0" json:"has_spoiler"`
	ContentSubtype string         `gorm:"column:content_subtype;type:varchar(16);not null;default:''" json:"content_subtype"`
	TrackRatings   datatypes.JSON `gorm:"column:track_ratings" json:"track_ratings"`
	CreatedAt      time.Time      `gorm:"column:created_at;index:idx_user_created;index:idx_created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
