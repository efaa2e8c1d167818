package types

// 内容状态：想看/在看/看过，各类内容共用一套
const (
	StatusWant     = "want"
	StatusDoing    = "doing"
	StatusFinished = "finished"
)

func IsValidStatus(s string) bool {
	return s == StatusWant || s == StatusDoing || s == StatusFinished
}
