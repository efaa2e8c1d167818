package dao

import (
	"Rately/models"
	"errors"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type ReviewLikeDAO struct {
	Repo[models.ReviewLike]
}

func NewReviewLikeDAO(db *gorm.DB) *ReviewLikeDAO {
	return &ReviewLikeDAO{Repo: NewRepo[models.ReviewLike](db)}
}

// GetByRatingUser 查询指定用户对指定评分的点赞记录
func (d *ReviewLikeDAO) GetByRatingUser(ctx context.Context, ratingID uint64, userID uint64) (*models.ReviewLike, error) {
	var item models.ReviewLike
	err := d.Db.WithContext(ctx).Where("rating_id = ? AND user_id = ?", ratingID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// SetStatus 设置点赞状态，如果不存在则创建
func (d *ReviewLikeDAO) SetStatus(ctx context.Context, ratingID uint64, userID uint64, status uint8) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ReviewLike
		err := tx.Where("rating_id = ? AND user_id = ?", ratingID, userID).Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			return err
		}
		if item.ID == 0 { // create
			item = models.ReviewLike{RatingID: ratingID, UserID: userID, Status: status}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			return nil
		}
		// update
		return tx.Model(&models.ReviewLike{}).Where("id = ?", item.ID).Update("status", status).Error
	})
}

// IsLiked 是否点赞（status=1）
func (d *ReviewLikeDAO) IsLiked(ctx context.Context, ratingID uint64, userID uint64) (bool, error) {
	return d.IsExist(ctx, "rating_id = ? AND user_id = ? AND status = 1", ratingID, userID)
}

// CountByRatingIDs 批量统计点赞数，好友动态榜排序用
func (d *ReviewLikeDAO) CountByRatingIDs(ctx context.Context, ratingIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(ratingIDs))
	if len(ratingIDs) == 0 {
		return counts, nil
	}

	type row struct {
		RatingID uint64 `gorm:"column:rating_id"`
		Cnt      int64  `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.ReviewLike{}).
		Select("rating_id, COUNT(*) as cnt").
		Where("rating_id IN ? AND status = 1", ratingIDs).
		Group("rating_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.RatingID] = r.Cnt
	}
	return counts, nil
}
