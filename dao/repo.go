package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO，封装最常用的单表操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// IsExist 按条件判断记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOne 按条件查询单条记录，不存在时返回 nil
func (r Repo[T]) FindOne(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll 按条件查询列表
func (r Repo[T]) FindAll(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(query, args...).Find(&items).Error
	return items, err
}

// Count 按条件统计
func (r Repo[T]) Count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count, err
}

// Create 插入记录
func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// DeleteWhere 按条件删除，返回影响行数
func (r Repo[T]) DeleteWhere(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var model T
	res := r.Db.WithContext(ctx).Where(query, args...).Delete(&model)
	return res.RowsAffected, res.Error
}
