package metadata

import (
	"Rately/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMovieSummary(t *testing.T) {
	data := []byte(`{
		"title": "重庆森林",
		"poster_path": "/chungking.jpg",
		"release_date": "1994-07-14",
		"credits": {
			"crew": [
				{"name": "杜可风", "job": "Director of Photography"},
				{"name": "王家卫", "job": "Director"}
			]
		}
	}`)

	s := ParseMovieSummary(data, "tt0109424")
	assert.Equal(t, types.ContentTypeMovie, s.ContentType)
	assert.Equal(t, "tt0109424", s.ContentID)
	assert.Equal(t, "重庆森林", s.Title)
	assert.Equal(t, "/chungking.jpg", s.ImageURL)
	assert.Equal(t, 1994, s.Year)
	assert.Equal(t, "王家卫", s.Creator)
}

func TestParseSeriesSummary(t *testing.T) {
	data := []byte(`{
		"name": "漫长的季节",
		"poster_path": "/season.jpg",
		"first_air_date": "2023-04-22",
		"created_by": [{"name": "辛爽"}]
	}`)

	s := ParseSeriesSummary(data, "ts2023")
	assert.Equal(t, types.ContentTypeSeries, s.ContentType)
	assert.Equal(t, "漫长的季节", s.Title)
	assert.Equal(t, 2023, s.Year)
	assert.Equal(t, "辛爽", s.Creator)
}

func TestParseGameSummary(t *testing.T) {
	data := []byte(`{
		"name": "Hades",
		"background_image": "https://img.example.com/hades.jpg",
		"released": "2020-09-17",
		"developers": [{"name": "Supergiant Games"}]
	}`)

	s := ParseGameSummary(data, "hades")
	assert.Equal(t, "Hades", s.Title)
	assert.Equal(t, 2020, s.Year)
	assert.Equal(t, "Supergiant Games", s.Creator)
}

func TestParseMusicSummary(t *testing.T) {
	data := []byte(`{
		"name": "范特西",
		"images": [{"url": "https://img.example.com/fantasy.jpg"}],
		"release_date": "2001-09-14",
		"artists": [{"name": "周杰伦"}]
	}`)

	s := ParseMusicSummary(data, "album:fantasy", types.MusicSubtypeAlbum)
	assert.Equal(t, "范特西", s.Title)
	assert.Equal(t, 2001, s.Year)
	assert.Equal(t, "周杰伦", s.Creator)
	assert.Equal(t, types.MusicSubtypeAlbum, s.Subtype)
}

func TestParseAlbumTracks(t *testing.T) {
	data := []byte(`{
		"items": [
			{"id": "t1", "name": "爱在西元前", "track_number": 1},
			{"id": "t2", "name": "简单爱", "track_number": 3}
		]
	}`)

	tracks := ParseAlbumTracks(data)
	assert.Len(t, tracks, 2)
	assert.Equal(t, "t1", tracks[0].TrackID)
	assert.Equal(t, "爱在西元前", tracks[0].TrackName)
	assert.Equal(t, 3, tracks[1].TrackNumber)
}

func TestParseAlbumTracksEmpty(t *testing.T) {
	tracks := ParseAlbumTracks([]byte(`{}`))
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
}

func TestSplitMusicID(t *testing.T) {
	subtype, id := SplitMusicID("track:abc123")
	assert.Equal(t, types.MusicSubtypeTrack, subtype)
	assert.Equal(t, "abc123", id)

	subtype, id = SplitMusicID("album:xyz")
	assert.Equal(t, types.MusicSubtypeAlbum, subtype)
	assert.Equal(t, "xyz", id)

	// 无前缀按专辑处理
	subtype, id = SplitMusicID("xyz")
	assert.Equal(t, types.MusicSubtypeAlbum, subtype)
	assert.Equal(t, "xyz", id)
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 1994, yearOf("1994-07-14"))
	assert.Equal(t, 2001, yearOf("2001"))
	assert.Equal(t, 0, yearOf(""))
	assert.Equal(t, 0, yearOf("n/a"))
}
