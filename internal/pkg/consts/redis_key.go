package consts

const (
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	UserFollowDirtyKey    = "user:follow:dirty"
	TokenRevokedKey       = "token:revoked:"
)
