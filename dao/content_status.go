package dao

import (
	"Rately/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ContentStatusDAO struct {
	Repo[models.ContentStatus]
}

func NewContentStatusDAO(db *gorm.DB) *ContentStatusDAO {
	return &ContentStatusDAO{Repo: NewRepo[models.ContentStatus](db)}
}

// GetByKey 查询用户对内容的状态，不存在返回 nil
func (d *ContentStatusDAO) GetByKey(ctx context.Context, userID uint64, contentType, contentID string) (*models.ContentStatus, error) {
	return d.FindOne(ctx, "user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID)
}

// Upsert 设置内容状态（如不存在则创建）
func (d *ContentStatusDAO) Upsert(ctx context.Context, userID uint64, contentType, contentID, status string) error {
	now := time.Now()

	res := d.Db.WithContext(ctx).
		Model(&models.ContentStatus{}).
		Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// 不存在则插入
	cs := models.ContentStatus{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return d.Db.WithContext(ctx).Create(&cs).Error
}

// UpsertTx 在给定事务内设置内容状态，评分提交时与评分写入同一事务
func (d *ContentStatusDAO) UpsertTx(tx *gorm.DB, userID uint64, contentType, contentID, status string) error {
	now := time.Now()

	res := tx.Model(&models.ContentStatus{}).
		Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	cs := models.ContentStatus{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return tx.Create(&cs).Error
}
