package types

// 分布桶常量：0, 0.5, ..., 10 共 21 个
const ScoreBucketCount = 21

// MinRatingsForChart 评分少于该数量时前端不渲染分布图（展示策略，非正确性约束）
const MinRatingsForChart = 3

// BucketSegment 桶内按类别拆分的一段，渲染堆叠柱状图用
type BucketSegment struct {
	ContentType string `json:"content_type"`
	Count       int64  `json:"count"`
}

// ScoreBucket 一个 0.5 宽的分布桶
type ScoreBucket struct {
	Score      float64         `json:"score"`
	TotalCount int64           `json:"total_count"`
	Segments   []BucketSegment `json:"segments"`
}

// ScoreDistribution 用户评分分布视图，派生数据不落库
type ScoreDistribution struct {
	Buckets      []ScoreBucket `json:"buckets"`
	MaxCount     int64         `json:"max_count"`
	TotalRatings int64         `json:"total_ratings"`
}
