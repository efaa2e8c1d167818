package dao

import (
	"Rately/models"
	"context"

	"gorm.io/gorm"
)

type PinnedItemDAO struct {
	Repo[models.PinnedItem]
}

func NewPinnedItemDAO(db *gorm.DB) *PinnedItemDAO {
	return &PinnedItemDAO{Repo: NewRepo[models.PinnedItem](db)}
}

// CountByUser 当前置顶数量
func (d *PinnedItemDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "user_id = ?", userID)
}

// ListByUser 置顶列表，按槽位顺序
func (d *PinnedItemDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.PinnedItem, error) {
	var items []*models.PinnedItem
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

// UsedPositions 已占用的槽位
func (d *PinnedItemDAO) UsedPositions(ctx context.Context, userID uint64) (map[int]bool, error) {
	type row struct {
		Position int `gorm:"column:position"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.PinnedItem{}).
		Select("position").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	used := make(map[int]bool, len(rows))
	for _, r := range rows {
		used[r.Position] = true
	}
	return used, nil
}

// DeleteByID 取消置顶
func (d *PinnedItemDAO) DeleteByID(ctx context.Context, userID, id uint64) (int64, error) {
	return d.DeleteWhere(ctx, "id = ? AND user_id = ?", id, userID)
}
