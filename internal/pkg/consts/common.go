package consts

const (
	// RecommendLimit 默认推荐关注人数
	RecommendLimit = 3

	// MaxFollowingCount 单个用户关注数量上限
	MaxFollowingCount = 1000
)
