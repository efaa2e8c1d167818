package models

import "time"

// AnnualChallenge 年度评分挑战
// 进度不落库，每次查询按年份窗口实时统计
type AnnualChallenge struct {
	ID             uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID         uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_year_filter" json:"user_id"`
	Year           int       `gorm:"column:year;not null;uniqueIndex:uk_user_year_filter" json:"year"`
	CategoryFilter string    `gorm:"column:category_filter;type:varchar(16);not null;uniqueIndex:uk_user_year_filter" json:"category_filter"` // 内容类别或 all
	TargetCount    int       `gorm:"column:target_count;not null" json:"target_count"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (AnnualChallenge) TableName() string {
	return "annual_challenges"
}
