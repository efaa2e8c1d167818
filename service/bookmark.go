package service

import (
	"Rately/dao"
	"Rately/models"
	"Rately/pkg/snowflake"
	"Rately/types"
	"context"
	"time"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	// ToggleBookmark 返回 true 表示本次加了书签，false 表示取消
	ToggleBookmark(ctx context.Context, userID uint64, req *types.ToggleBookmarkRequest) (bool, error)
	ListBookmarks(ctx context.Context, userID uint64) (*types.GroupedBookmarksResponse, error)
}

type BookmarkService struct {
	BookmarkDAO *dao.BookmarkDAO
}

// ToggleBookmark 书签开关：已存在则取消，不存在则添加
func (s *BookmarkService) ToggleBookmark(ctx context.Context, userID uint64, req *types.ToggleBookmarkRequest) (bool, error) {
	if !types.IsValidContentType(req.ContentType) {
		return false, types.ErrInvalidContentType
	}

	existing, err := s.BookmarkDAO.GetByKey(ctx, userID, req.ContentType, req.ContentID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		_, err := s.BookmarkDAO.DeleteByKey(ctx, userID, req.ContentType, req.ContentID)
		return false, err
	}

	now := time.Now()
	bookmark := &models.Bookmark{
		ID:              uint64(snowflake.GenID()),
		UserID:          userID,
		ContentType:     req.ContentType,
		ContentID:       req.ContentID,
		ContentTitle:    req.ContentTitle,
		ContentImageURL: req.ContentImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.BookmarkDAO.Create(ctx, bookmark); err != nil {
		return false, err
	}
	return true, nil
}

// ListBookmarks 书签列表，按内容类别分组
func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uint64) (*types.GroupedBookmarksResponse, error) {
	items, err := s.BookmarkDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &types.GroupedBookmarksResponse{
		Groups: make(map[string][]*types.BookmarkResponse),
		Total:  int64(len(items)),
	}
	for _, item := range items {
		resp.Groups[item.ContentType] = append(resp.Groups[item.ContentType], &types.BookmarkResponse{
			ID:              item.ID,
			ContentType:     item.ContentType,
			ContentID:       item.ContentID,
			ContentTitle:    item.ContentTitle,
			ContentImageURL: item.ContentImageURL,
			CreatedAt:       item.CreatedAt,
		})
	}
	return resp, nil
}
