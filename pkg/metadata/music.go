package metadata

import (
	"Rately/config"
	"Rately/types"
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// MusicClient 音乐元数据，专辑与单曲共用一个服务
// contentID 形如 "album:xxx" / "track:xxx"，无前缀时按专辑处理
type MusicClient struct {
	cfg *config.MetadataService
}

func (m *MusicClient) GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error) {
	subtype, id := SplitMusicID(contentID)
	kind := "albums"
	if subtype == types.MusicSubtypeTrack {
		kind = "tracks"
	}
	url := fmt.Sprintf("%s/%s/%s?api_key=%s", m.cfg.BaseURL, kind, id, m.cfg.ApiKey)
	data, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseMusicSummary(data, contentID, subtype), nil
}

// GetAlbumTracks 专辑曲目列表，单曲打分面板用
func (m *MusicClient) GetAlbumTracks(ctx context.Context, contentID string) ([]types.Track, error) {
	_, id := SplitMusicID(contentID)
	url := fmt.Sprintf("%s/albums/%s/tracks?api_key=%s", m.cfg.BaseURL, id, m.cfg.ApiKey)
	data, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseAlbumTracks(data), nil
}

// SplitMusicID 拆出音乐子类型与原始ID
func SplitMusicID(contentID string) (subtype, id string) {
	const (
		albumPrefix = "album:"
		trackPrefix = "track:"
	)
	switch {
	case len(contentID) > len(trackPrefix) && contentID[:len(trackPrefix)] == trackPrefix:
		return types.MusicSubtypeTrack, contentID[len(trackPrefix):]
	case len(contentID) > len(albumPrefix) && contentID[:len(albumPrefix)] == albumPrefix:
		return types.MusicSubtypeAlbum, contentID[len(albumPrefix):]
	default:
		return types.MusicSubtypeAlbum, contentID
	}
}

func ParseMusicSummary(data []byte, contentID, subtype string) *types.ContentSummary {
	body := string(data)
	return &types.ContentSummary{
		ContentType: types.ContentTypeMusic,
		ContentID:   contentID,
		Title:       gjson.Get(body, "name").String(),
		ImageURL:    gjson.Get(body, "images.0.url").String(),
		Year:        yearOf(gjson.Get(body, "release_date").String()),
		Creator:     gjson.Get(body, "artists.0.name").String(),
		Subtype:     subtype,
	}
}

func ParseAlbumTracks(data []byte) []types.Track {
	items := gjson.GetBytes(data, "items")
	tracks := make([]types.Track, 0)
	items.ForEach(func(_, item gjson.Result) bool {
		tracks = append(tracks, types.Track{
			TrackID:     item.Get("id").String(),
			TrackName:   item.Get("name").String(),
			TrackNumber: int(item.Get("track_number").Int()),
		})
		return true
	})
	return tracks
}
