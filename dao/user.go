package dao

import (
	"Rately/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// GetByEmail 按邮箱查询用户，不存在返回 nil
func (d *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.FindOne(ctx, "email = ?", email)
}

// GetByID 按ID查询用户
func (d *Users) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	return d.FindOne(ctx, "id = ?", id)
}

// FindByIDs 根据 ID 列表查询用户
func (d *Users) FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}
