package dao

import (
	"Rately/models"
	"context"

	"gorm.io/gorm"
)

type ChallengeDAO struct {
	Repo[models.AnnualChallenge]
}

func NewChallengeDAO(db *gorm.DB) *ChallengeDAO {
	return &ChallengeDAO{Repo: NewRepo[models.AnnualChallenge](db)}
}

// ExistsForFilter 判断 (user, year, category_filter) 的挑战是否已存在
func (d *ChallengeDAO) ExistsForFilter(ctx context.Context, userID uint64, year int, filter string) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND year = ? AND category_filter = ?", userID, year, filter)
}

// FindByUser 查询用户全部挑战，按年份倒序
func (d *ChallengeDAO) FindByUser(ctx context.Context, userID uint64) ([]*models.AnnualChallenge, error) {
	var challenges []*models.AnnualChallenge
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, created_at ASC").
		Find(&challenges).Error
	return challenges, err
}

// GetByID 按ID查询挑战，不存在返回 nil
func (d *ChallengeDAO) GetByID(ctx context.Context, id uint64) (*models.AnnualChallenge, error) {
	return d.FindOne(ctx, "id = ?", id)
}

// DeleteByID 删除挑战（只能删自己的）
func (d *ChallengeDAO) DeleteByID(ctx context.Context, userID, id uint64) (int64, error) {
	return d.DeleteWhere(ctx, "id = ? AND user_id = ?", id, userID)
}
