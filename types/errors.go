package types

import "Rately/pkg/response"

// 业务错误码
// 401xx 鉴权 / 400xx 校验与冲突 / 404xx 不存在
var (
	ErrNotAuthenticated = response.NewError(40100, "未登录")

	// ErrMaxPinned 置顶位已满（上限 5 个）
	ErrMaxPinned = response.NewError(40001, "置顶数量已达上限")

	// ErrDuplicateTitle 自建条目名称冲突
	ErrDuplicateTitle = response.NewError(40002, "条目名称已存在")

	// ErrDuplicateChallenge 同一年同一类别的挑战已存在
	ErrDuplicateChallenge = response.NewError(40003, "该年度该类别的挑战已存在")

	ErrInvalidScore       = response.NewError(40004, "评分必须在 0-10 之间且为 0.5 的倍数")
	ErrInvalidContentType = response.NewError(40005, "内容类别不合法")
	ErrInvalidStatus      = response.NewError(40006, "内容状态不合法")

	ErrContentNotFound = response.NewError(40401, "内容不存在")
	ErrRatingNotFound  = response.NewError(40402, "评分不存在")
)

// MaxPinnedItems 每个用户最多置顶数
const MaxPinnedItems = 5
