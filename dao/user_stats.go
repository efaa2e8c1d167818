package dao

import (
	"Rately/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// GetOrCreate 获取或创建用户统计
func (d *UserStatsDAO) GetOrCreate(ctx context.Context, userID uint64) (*models.UserStats, error) {
	stats := &models.UserStats{UserID: userID}
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(stats).Error
	return stats, err
}

// IncrFollowerCount 增加粉丝数
func (d *UserStatsDAO) IncrFollowerCount(ctx context.Context, userID uint64, delta int) error {
	return d.incrColumn(ctx, userID, "follower_count", delta)
}

// IncrFollowingCount 增加关注数
func (d *UserStatsDAO) IncrFollowingCount(ctx context.Context, userID uint64, delta int) error {
	return d.incrColumn(ctx, userID, "following_count", delta)
}

// IncrRatingCount 增加评分数
func (d *UserStatsDAO) IncrRatingCount(ctx context.Context, userID uint64, delta int) error {
	return d.incrColumn(ctx, userID, "rating_count", delta)
}

// incrColumn 计数增减，UPSERT 并限制不为负
func (d *UserStatsDAO) incrColumn(ctx context.Context, userID uint64, column string, delta int) error {
	now := time.Now()
	return d.Db.WithContext(ctx).Exec(`
		INSERT INTO user_stats (user_id, `+column+`, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			`+column+` = GREATEST(`+column+` + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, delta, now, now, delta).Error
}

// GetByUserID 根据用户ID获取统计
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	var stats models.UserStats
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &stats, err
}
