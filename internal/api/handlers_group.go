package api

import "Tweetr/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	FollowHandler   *handler.FollowHandler
	TweetHandler    *handler.TweetHandler
	FavoriteHandler *handler.FavoriteHandler
}
