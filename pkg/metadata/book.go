package metadata

import (
	"Rately/config"
	"Rately/types"
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	books "google.golang.org/api/books/v1"
)

// BookClient 图书元数据，走 Google Books API
type BookClient struct {
	cfg *config.MetadataService
}

func (b *BookClient) GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error) {
	opts := []option.ClientOption{option.WithAPIKey(b.cfg.ApiKey)}
	if b.cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(b.cfg.BaseURL))
	}
	svc, err := books.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	vol, err := svc.Volumes.Get(contentID).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if vol.VolumeInfo == nil {
		return nil, ErrNotFound
	}

	summary := &types.ContentSummary{
		ContentType: types.ContentTypeBook,
		ContentID:   contentID,
		Title:       vol.VolumeInfo.Title,
		Year:        yearOf(vol.VolumeInfo.PublishedDate),
	}
	if len(vol.VolumeInfo.Authors) > 0 {
		summary.Creator = vol.VolumeInfo.Authors[0]
	}
	if vol.VolumeInfo.ImageLinks != nil {
		summary.ImageURL = vol.VolumeInfo.ImageLinks.Thumbnail
	}
	return summary, nil
}
