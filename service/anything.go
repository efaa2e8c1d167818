package service

import (
	"Rately/config"
	"Rately/dao"
	"Rately/models"
	"Rately/pkg/llm"
	"Rately/pkg/log"
	"Rately/pkg/snowflake"
	"Rately/pkg/utils"
	"Rately/types"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

var _ IAnythingService = (*AnythingService)(nil)

type IAnythingService interface {
	CreateItem(ctx context.Context, userID uint64, req *types.CreateAnythingRequest) (*types.AnythingItemResponse, error)
	GetItem(ctx context.Context, itemID uint64) (*types.AnythingItemResponse, error)
	GetItemByShareCode(ctx context.Context, code string) (*types.AnythingItemResponse, error)
}

type AnythingService struct {
	AnythingDAO *dao.AnythingItemDAO
	Tagger      *llm.Tagger
	Config      *config.Config
}

// CreateItem 创建自建条目，名称全站唯一
// 标签由 LLM 异步生成，失败不影响条目本身
func (s *AnythingService) CreateItem(ctx context.Context, userID uint64, req *types.CreateAnythingRequest) (*types.AnythingItemResponse, error) {
	exists, err := s.AnythingDAO.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.ErrDuplicateTitle
	}

	id := snowflake.GenID()
	now := time.Now()
	item := &models.AnythingItem{
		ID:          uint64(id),
		CreatorID:   userID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ShareCode:   utils.GenShareCode(s.Config.App.HashSalt, id),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.AnythingDAO.Create(ctx, item); err != nil {
		return nil, err
	}

	go s.genTags(item)

	return toAnythingResponse(item), nil
}

// GetItem 按ID查询自建条目
func (s *AnythingService) GetItem(ctx context.Context, itemID uint64) (*types.AnythingItemResponse, error) {
	item, err := s.AnythingDAO.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, types.ErrContentNotFound
	}
	return toAnythingResponse(item), nil
}

// GetItemByShareCode 按分享码查询，分享链接落地页用
func (s *AnythingService) GetItemByShareCode(ctx context.Context, code string) (*types.AnythingItemResponse, error) {
	item, err := s.AnythingDAO.GetByShareCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, types.ErrContentNotFound
	}
	return toAnythingResponse(item), nil
}

func (s *AnythingService) genTags(item *models.AnythingItem) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tags := s.Tagger.GenItemTags(ctx, item.Title, item.Description)
	if len(tags) == 0 {
		return
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return
	}
	if err := s.AnythingDAO.UpdateTags(ctx, item.ID, data); err != nil {
		log.L.Error("标签回写失败", zap.Uint64("item_id", item.ID), zap.Error(err))
	}
}

func toAnythingResponse(item *models.AnythingItem) *types.AnythingItemResponse {
	resp := &types.AnythingItemResponse{
		ID:          item.ID,
		CreatorID:   item.CreatorID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Tags:        make([]string, 0),
		ShareCode:   item.ShareCode,
		CreatedAt:   item.CreatedAt,
	}
	if len(item.Tags) > 0 {
		var tags []string
		if err := json.Unmarshal(item.Tags, &tags); err == nil {
			resp.Tags = tags
		}
	}
	return resp
}
