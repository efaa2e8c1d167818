package dao

import (
	"Rately/models"
	"context"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

func (d *Image) CreateImage(ctx context.Context, img *models.Image) error {
	return d.Db.WithContext(ctx).Create(img).Error
}
