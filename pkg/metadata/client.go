package metadata

import (
	"Rately/config"
	"Rately/types"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound 元数据服务明确告知内容不存在，区别于网络层瞬时失败
var ErrNotFound = errors.New("内容不存在")

var httpClient = &http.Client{Timeout: 5 * time.Second}

// Source 单类内容的元数据来源
type Source interface {
	GetSummary(ctx context.Context, contentID string) (*types.ContentSummary, error)
}

// Registry 按内容类别路由到对应的元数据服务
type Registry struct {
	sources map[string]Source
	music   *MusicClient
}

func NewRegistry(cfg *config.Metadata) *Registry {
	music := &MusicClient{cfg: cfg.Music}
	return &Registry{
		music: music,
		sources: map[string]Source{
			types.ContentTypeMovie:   &MovieClient{cfg: cfg.Movie},
			types.ContentTypeSeries:  &SeriesClient{cfg: cfg.Movie},
			types.ContentTypeBook:    &BookClient{cfg: cfg.Book},
			types.ContentTypeGame:    &GameClient{cfg: cfg.Game},
			types.ContentTypeMusic:   music,
			types.ContentTypePodcast: &PodcastClient{cfg: cfg.Podcast},
		},
	}
}

// GetSummary 查询内容摘要，类别不支持或内容不存在返回 ErrNotFound
func (r *Registry) GetSummary(ctx context.Context, contentType, contentID string) (*types.ContentSummary, error) {
	src, ok := r.sources[contentType]
	if !ok {
		return nil, ErrNotFound
	}
	return src.GetSummary(ctx, contentID)
}

// Music 音乐源，专辑曲目列表等音乐特有查询用
func (r *Registry) Music() *MusicClient {
	return r.music
}

// fetchJSON 发起 GET 请求并读取响应体
// 404 映射为 ErrNotFound，其余非 2xx 视为瞬时失败
func fetchJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("元数据服务异常: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// yearOf 从 "2006-01-02" 形式的日期里取年份，取不到返回 0
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	t, err := time.Parse("2006", date[:4])
	if err != nil {
		return 0
	}
	return t.Year()
}
