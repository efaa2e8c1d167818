package metadata

import (
	"Rately/config"
	"Rately/types"
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// PodcastClient 播客元数据
type PodcastClient struct {
	cfg *config.MetadataService
}

func (p *PodcastClient) GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error) {
	url := fmt.Sprintf("%s/podcasts/%s?api_key=%s", p.cfg.BaseURL, contentID, p.cfg.ApiKey)
	data, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParsePodcastSummary(data, contentID), nil
}

func ParsePodcastSummary(data []byte, contentID string) *types.ContentSummary {
	body := string(data)
	return &types.ContentSummary{
		ContentType: types.ContentTypePodcast,
		ContentID:   contentID,
		Title:       gjson.Get(body, "title").String(),
		ImageURL:    gjson.Get(body, "image").String(),
		Creator:     gjson.Get(body, "publisher").String(),
	}
}
