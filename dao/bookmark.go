package dao

import (
	"Rately/models"
	"context"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	Repo[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{Repo: NewRepo[models.Bookmark](db)}
}

// GetByKey 查询用户对内容的书签，不存在返回 nil
func (d *BookmarkDAO) GetByKey(ctx context.Context, userID uint64, contentType, contentID string) (*models.Bookmark, error) {
	return d.FindOne(ctx, "user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID)
}

// ListByUser 用户全部书签，按创建时间倒序
func (d *BookmarkDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.Bookmark, error) {
	var items []*models.Bookmark
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// DeleteByKey 删除书签，返回影响行数
func (d *BookmarkDAO) DeleteByKey(ctx context.Context, userID uint64, contentType, contentID string) (int64, error) {
	return d.DeleteWhere(ctx, "user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID)
}
