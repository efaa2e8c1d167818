package service

import (
	"Rately/dao"
	"Rately/models"
	"Rately/pkg/snowflake"
	"Rately/types"
	"context"
	"errors"
	"time"
)

var _ IPinService = (*PinService)(nil)

type IPinService interface {
	PinItem(ctx context.Context, userID uint64, req *types.PinItemRequest) (*types.PinnedItemResponse, error)
	UnpinItem(ctx context.Context, userID uint64, pinID uint64) error
	ListPinnedItems(ctx context.Context, userID uint64) ([]*types.PinnedItemResponse, error)
}

type PinService struct {
	PinDAO *dao.PinnedItemDAO
}

// PinItem 置顶内容，每人最多 5 个槽位
// 不指定槽位时取最小空位，指定的槽位被占用时报错
func (s *PinService) PinItem(ctx context.Context, userID uint64, req *types.PinItemRequest) (*types.PinnedItemResponse, error) {
	if !types.IsValidContentType(req.ContentType) {
		return nil, types.ErrInvalidContentType
	}
	if req.Position < 0 || req.Position > types.MaxPinnedItems {
		return nil, errors.New("置顶位不合法")
	}

	used, err := s.PinDAO.UsedPositions(ctx, userID)
	if err != nil {
		return nil, err
	}
	position, err := AssignPinSlot(used, req.Position)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.PinnedItem{
		ID:              uint64(snowflake.GenID()),
		UserID:          userID,
		ContentType:     req.ContentType,
		ContentID:       req.ContentID,
		ContentTitle:    req.ContentTitle,
		ContentImageURL: req.ContentImageURL,
		Position:        position,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.PinDAO.Create(ctx, item); err != nil {
		return nil, err
	}
	return toPinnedResponse(item), nil
}

// AssignPinSlot 选定置顶槽位：满员直接拒绝
// requested 为 0 时取最小空位，指定槽位被占用时报错
func AssignPinSlot(used map[int]bool, requested int) (int, error) {
	if len(used) >= types.MaxPinnedItems {
		return 0, types.ErrMaxPinned
	}
	if requested == 0 {
		for i := 1; i <= types.MaxPinnedItems; i++ {
			if !used[i] {
				return i, nil
			}
		}
		return 0, types.ErrMaxPinned
	}
	if used[requested] {
		return 0, errors.New("该置顶位已被占用")
	}
	return requested, nil
}

// UnpinItem 取消置顶，记录不存在时按空操作处理
func (s *PinService) UnpinItem(ctx context.Context, userID uint64, pinID uint64) error {
	_, err := s.PinDAO.DeleteByID(ctx, userID, pinID)
	return err
}

// ListPinnedItems 置顶列表，按槽位顺序
func (s *PinService) ListPinnedItems(ctx context.Context, userID uint64) ([]*types.PinnedItemResponse, error) {
	items, err := s.PinDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]*types.PinnedItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toPinnedResponse(item))
	}
	return resp, nil
}

func toPinnedResponse(item *models.PinnedItem) *types.PinnedItemResponse {
	return &types.PinnedItemResponse{
		ID:              item.ID,
		ContentType:     item.ContentType,
		ContentID:       item.ContentID,
		ContentTitle:    item.ContentTitle,
		ContentImageURL: item.ContentImageURL,
		Position:        item.Position,
		CreatedAt:       item.CreatedAt,
	}
}
