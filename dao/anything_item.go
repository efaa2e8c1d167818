package dao

import (
	"Rately/models"
	"context"

	"gorm.io/gorm"
)

type AnythingItemDAO struct {
	Repo[models.AnythingItem]
}

func NewAnythingItemDAO(db *gorm.DB) *AnythingItemDAO {
	return &AnythingItemDAO{Repo: NewRepo[models.AnythingItem](db)}
}

// ExistsByTitle 判断同名条目是否已存在
func (d *AnythingItemDAO) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return d.IsExist(ctx, "title = ?", title)
}

// GetByID 按ID查询条目，不存在返回 nil
func (d *AnythingItemDAO) GetByID(ctx context.Context, id uint64) (*models.AnythingItem, error) {
	return d.FindOne(ctx, "id = ?", id)
}

// GetByShareCode 按分享码查询条目，不存在返回 nil
func (d *AnythingItemDAO) GetByShareCode(ctx context.Context, code string) (*models.AnythingItem, error) {
	return d.FindOne(ctx, "share_code = ?", code)
}

// UpdateTags 回写 LLM 生成的标签
func (d *AnythingItemDAO) UpdateTags(ctx context.Context, id uint64, tags []byte) error {
	return d.Db.WithContext(ctx).
		Model(&models.AnythingItem{}).
		Where("id = ?", id).
		Update("tags", tags).Error
}
