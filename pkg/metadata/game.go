package metadata

import (
	"Rately/config"
	"Rately/types"
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// GameClient 游戏元数据，RAWG 风格接口
type GameClient struct {
	cfg *config.MetadataService
}

func (g *GameClient) GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error) {
	url := fmt.Sprintf("%s/games/%s?key=%s", g.cfg.BaseURL, contentID, g.cfg.ApiKey)
	data, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseGameSummary(data, contentID), nil
}

func ParseGameSummary(data []byte, contentID string) *types.ContentSummary {
	body := string(data)
	return &types.ContentSummary{
		ContentType: types.ContentTypeGame,
		ContentID:   contentID,
		Title:       gjson.Get(body, "name").String(),
		ImageURL:    gjson.Get(body, "background_image").String(),
		Year:        yearOf(gjson.Get(body, "released").String()),
		Creator:     gjson.Get(body, "developers.0.name").String(),
	}
}
