package service

import (
	"Rately/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTrackRatings(t *testing.T) {
	tracks := []types.Track{
		{TrackID: "t1", TrackName: "开场曲", TrackNumber: 1},
		{TrackID: "t2", TrackName: "主打歌", TrackNumber: 2},
		{TrackID: "t3", TrackName: "尾声", TrackNumber: 3},
	}
	existing := []types.TrackRatingEntry{
		{TrackID: "t2", Score: 9},
		// 专辑改版后下架的曲目不再出现
		{TrackID: "gone", Score: 10},
	}

	merged := MergeTrackRatings(tracks, existing)

	assert.Len(t, merged, 3)
	assert.Equal(t, "t1", merged[0].TrackID)
	assert.Equal(t, 0.0, merged[0].Score)
	assert.Equal(t, 9.0, merged[1].Score)
	assert.Equal(t, "主打歌", merged[1].TrackName)
	assert.Equal(t, 0.0, merged[2].Score)
}

func TestMergeTrackRatings_SnapsScores(t *testing.T) {
	tracks := []types.Track{{TrackID: "t1", TrackNumber: 1}}
	existing := []types.TrackRatingEntry{{TrackID: "t1", Score: 8.3}}

	merged := MergeTrackRatings(tracks, existing)

	assert.Equal(t, 8.5, merged[0].Score)
}

func TestTrackAverage(t *testing.T) {
	entries := []types.TrackRatingEntry{
		{TrackID: "t1", Score: 8},
		{TrackID: "t2", Score: 9},
		// 未打分的不参与平均
		{TrackID: "t3", Score: 0},
	}

	avg := TrackAverage(entries)
	assert.NotNil(t, avg)
	assert.Equal(t, 8.5, *avg)
}

func TestTrackAverage_RoundsToOneDecimal(t *testing.T) {
	entries := []types.TrackRatingEntry{
		{TrackID: "t1", Score: 8},
		{TrackID: "t2", Score: 8},
		{TrackID: "t3", Score: 7.5},
	}

	// 7.8333... 舍入到 7.8
	avg := TrackAverage(entries)
	assert.NotNil(t, avg)
	assert.Equal(t, 7.8, *avg)
}

func TestTrackAverage_NoneRated(t *testing.T) {
	entries := []types.TrackRatingEntry{
		{TrackID: "t1", Score: 0},
		{TrackID: "t2", Score: 0},
	}
	assert.Nil(t, TrackAverage(entries))
	assert.Nil(t, TrackAverage(nil))
}

func TestFormStateTransitions(t *testing.T) {
	// 状态常量的序列化值是对外协议的一部分
	assert.Equal(t, types.FormState("loading"), types.FormStateLoading)
	assert.Equal(t, types.FormState("ready"), types.FormStateReady)
	assert.Equal(t, types.FormState("saving"), types.FormStateSaving)
	assert.Equal(t, types.FormState("saved"), types.FormStateSaved)
	assert.Equal(t, types.FormState("save_failed"), types.FormStateSaveFailed)
}
