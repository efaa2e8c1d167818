package metadata

import (
	"Rately/config"
	"Rately/types"
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// MovieClient 电影元数据，TMDB 风格接口
type MovieClient struct {
	cfg *config.MetadataService
}

func (m *MovieClient) GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error) {
	url := fmt.Sprintf("%s/movie/%s?api_key=%s&append_to_response=credits",
		m.cfg.BaseURL, contentID, m.cfg.ApiKey)
	data, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseMovieSummary(data, contentID), nil
}

func ParseMovieSummary(data []byte, contentID string) *types.ContentSummary {
	body := string(data)
	director := gjson.Get(body, `credits.crew.#(job=="Director").name`).String()
	return &types.ContentSummary{
		ContentType: types.ContentTypeMovie,
		ContentID:   contentID,
		Title:       gjson.Get(body, "title").String(),
		ImageURL:    gjson.Get(body, "poster_path").String(),
		Year:        yearOf(gjson.Get(body, "release_date").String()),
		Creator:     director,
	}
}

// SeriesClient 剧集元数据，与电影共用同一个服务
type SeriesClient struct {
	cfg *config.MetadataService
}

func (s *SeriesClient) GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error) {
	url := fmt.Sprintf("%s/tv/%s?api_key=%s", s.cfg.BaseURL, contentID, s.cfg.ApiKey)
	data, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseSeriesSummary(data, contentID), nil
}

func ParseSeriesSummary(data []byte, contentID string) *types.ContentSummary {
	body := string(data)
	return &types.ContentSummary{
		ContentType: types.ContentTypeSeries,
		ContentID:   contentID,
		Title:       gjson.Get(body, "name").String(),
		ImageURL:    gjson.Get(body, "poster_path").String(),
		Year:        yearOf(gjson.Get(body, "first_air_date").String()),
		Creator:     gjson.Get(body, "created_by.0.name").String(),
	}
}
