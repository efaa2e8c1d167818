package types

// 内容类别常量，评分、挑战、书签都以 (content_type, content_id) 定位内容
const (
	ContentTypeMovie    = "movie"
	ContentTypeSeries   = "series"
	ContentTypeBook     = "book"
	ContentTypeGame     = "game"
	ContentTypeMusic    = "music"
	ContentTypePodcast  = "podcast"
	ContentTypeAnything = "anything"
)

// CategoryAll 挑战类别过滤的哨兵值：不限类别
const CategoryAll = "all"

// 音乐子类型
const (
	MusicSubtypeAlbum = "album"
	MusicSubtypeTrack = "track"
)

var AllContentTypes = []string{
	ContentTypeMovie,
	ContentTypeSeries,
	ContentTypeBook,
	ContentTypeGame,
	ContentTypeMusic,
	ContentTypePodcast,
	ContentTypeAnything,
}

func IsValidContentType(t string) bool {
	for _, v := range AllContentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidCategoryFilter 挑战类别过滤：内容类别或 all
func IsValidCategoryFilter(t string) bool {
	return t == CategoryAll || IsValidContentType(t)
}

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 20
)

// ContentSummary 各元数据服务归一化后的内容摘要
type ContentSummary struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Year        int    `json:"year,omitempty"`
	Creator     string `json:"creator,omitempty"` // 导演/作者/厂商/艺人/主播
	Subtype     string `json:"subtype,omitempty"` // music: album | track
}

// Track 专辑曲目
type Track struct {
	TrackID     string `json:"track_id"`
	TrackName   string `json:"track_name"`
	TrackNumber int    `json:"track_number"`
}
