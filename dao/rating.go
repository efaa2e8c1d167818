package dao

import (
	"Rately/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type RatingDAO struct {
	Repo[models.Rating]
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{Repo: NewRepo[models.Rating](db)}
}

// GetByKey 按业务主键查询评分，不存在返回 nil（调用方以此区分新建/编辑流）
func (d *RatingDAO) GetByKey(ctx context.Context, userID uint64, contentType, contentID string) (*models.Rating, error) {
	return d.FindOne(ctx, "user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID)
}

// Upsert 按业务主键写入评分：存在则整行覆盖，不存在则插入
func (d *RatingDAO) Upsert(ctx context.Context, rating *models.Rating) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return d.UpsertTx(tx, rating)
	})
}

// UpsertTx 在给定事务内写入评分，评分与状态的联动写依赖它
// 优先更新已有记录，避免 OnConflict 未命中导致不更新的情况
func (d *RatingDAO) UpsertTx(tx *gorm.DB, rating *models.Rating) error {
	var existing models.Rating
	err := tx.Where("user_id = ? AND content_type = ? AND content_id = ?",
		rating.UserID, rating.ContentType, rating.ContentID).
		Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}
	if !MergeRatingRow(&existing, rating, time.Now()) {
		return tx.Create(rating).Error
	}
	return tx.Model(&models.Rating{}).Where("id = ?", rating.ID).Updates(map[string]any{
		"content_title":     rating.ContentTitle,
		"content_image_url": rating.ContentImageURL,
		"score":             rating.Score,
		"review_text":       rating.ReviewText,
		"private_note":      rating.PrivateNote,
		"has_spoiler":       rating.HasSpoiler,
		"content_subtype":   rating.ContentSubtype,
		"track_ratings":     rating.TrackRatings,
		"updated_at":        rating.UpdatedAt,
	}).Error
}

// MergeRatingRow 把新评分并到既有行：命中业务主键时保留原 ID 与创建时间，
// 其余字段以新值为准；未命中按插入处理。返回是否为更新
func MergeRatingRow(existing, incoming *models.Rating, now time.Time) bool {
	if existing == nil || existing.ID == 0 {
		incoming.CreatedAt = now
		incoming.UpdatedAt = now
		return false
	}
	incoming.ID = existing.ID
	incoming.CreatedAt = existing.CreatedAt
	incoming.UpdatedAt = now
	return true
}

// DeleteByID 删除评分，记录不存在时按空操作处理
func (d *RatingDAO) DeleteByID(ctx context.Context, userID, id uint64) error {
	_, err := d.DeleteWhere(ctx, "id = ? AND user_id = ?", id, userID)
	return err
}

// FindAllByUser 查询用户全部评分（分布统计用，个人历史量级可接受）
func (d *RatingDAO) FindAllByUser(ctx context.Context, userID uint64) ([]*models.Rating, error) {
	return d.FindAll(ctx, "user_id = ?", userID)
}

// ListByUser 按类别过滤的分页评分历史，按创建时间倒序
func (d *RatingDAO) ListByUser(ctx context.Context, userID uint64, contentType string, limit, offset int) ([]*models.Rating, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Rating{}).Where("user_id = ?", userID)
	if contentType != "" {
		q = q.Where("content_type = ?", contentType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ratings []*models.Rating
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ratings).Error
	return ratings, total, err
}

// CountInRange 统计用户在时间窗口内的评分数，类别为 all 时不过滤
// 年份窗口统一按 UTC 计算
func (d *RatingDAO) CountInRange(ctx context.Context, userID uint64, category string, start, end time.Time) (int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Rating{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end)
	if category != "" && category != "all" {
		q = q.Where("content_type = ?", category)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// FindByUsersSince 查询一批用户自 since 以来的评分（好友动态原始行）
func (d *RatingDAO) FindByUsersSince(ctx context.Context, userIDs []uint64, since time.Time) ([]*models.Rating, error) {
	if len(userIDs) == 0 {
		return []*models.Rating{}, nil
	}
	var ratings []*models.Rating
	err := d.Db.WithContext(ctx).
		Where("user_id IN ? AND created_at >= ?", userIDs, since).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// FindSince 查询全站自 since 以来的评分（全站热榜原始行）
func (d *RatingDAO) FindSince(ctx context.Context, since time.Time) ([]*models.Rating, error) {
	var ratings []*models.Rating
	err := d.Db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&ratings).Error
	return ratings, err
}

// FindRatedKeysByUser 查询用户已评分的 (content_type, content_id) 集合，推荐去重用
func (d *RatingDAO) FindRatedKeysByUser(ctx context.Context, userID uint64) (map[string]struct{}, error) {
	type row struct {
		ContentType string `gorm:"column:content_type"`
		ContentID   string `gorm:"column:content_id"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("content_type, content_id").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		keys[r.ContentType+":"+r.ContentID] = struct{}{}
	}
	return keys, nil
}
