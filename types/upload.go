package types

const (
	ImageStatusUploaded = 1
)

type UploadImageResp struct {
	ImageID int64  `json:"image_id"`
	Url     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}
