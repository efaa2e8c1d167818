package types

import "time"

type CreateChallengeRequest struct {
	Year           int    `json:"year" binding:"required"`
	CategoryFilter string `json:"category_filter" binding:"required"`
	TargetCount    int    `json:"target_count" binding:"required,gt=0"`
}

// ChallengeProgress 挑战 + 实时推导的进度，进度不落库
type ChallengeProgress struct {
	ID             uint64    `json:"id"`
	Year           int       `json:"year"`
	CategoryFilter string    `json:"category_filter"`
	TargetCount    int       `json:"target_count"`
	Progress       int64     `json:"progress"`
	Percentage     int       `json:"percentage"`
	IsCompleted    bool      `json:"is_completed"`
	// JustCompleted 本次会话首次检测到完成时为 true，只会出现一次
	JustCompleted bool      `json:"just_completed"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListChallengesResponse struct {
	Challenges []*ChallengeProgress `json:"challenges"`
}
