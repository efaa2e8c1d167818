package types

// 评分表单状态机
// Loading -> Ready -> Saving -> Saved | SaveFailed
type FormState string

const (
	FormStateLoading    FormState = "loading"
	FormStateReady      FormState = "ready"
	FormStateSaving     FormState = "saving"
	FormStateSaved      FormState = "saved"
	FormStateSaveFailed FormState = "save_failed"
)

// RatingForm 表单视图：内容元数据 + 既有评分/状态的预填结果
type RatingForm struct {
	State   FormState       `json:"state"`
	Content *ContentSummary `json:"content"`
	// Prefilled 为 true 表示字段来自已存在的评分，编辑流；否则为新建流
	Prefilled bool `json:"prefilled"`

	Score       float64 `json:"score"`
	ReviewText  string  `json:"review_text"`
	PrivateNote string  `json:"private_note"`
	HasSpoiler  bool    `json:"has_spoiler"`
	Status      string  `json:"status"`

	// 专辑内容独有
	TrackRatings []TrackRatingEntry `json:"track_ratings,omitempty"`
	// TrackAverage 已打分曲目的平均分，仅提示用，不回写专辑总分；无曲目打分时为 nil
	TrackAverage *float64 `json:"track_average,omitempty"`
}
