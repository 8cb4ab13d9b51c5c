package api

import (
	"Tweetr/internal/api/middleware"
	"Tweetr/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.POST("/signup", group.UserHandler.Signup)
		apiGroup.POST("/login", group.UserHandler.Login)

		accountGroup := apiGroup.Group("/account")
		accountGroup.Use(middleware.AuthMiddleware())
		{
			accountGroup.GET("/me", group.UserHandler.Me)
			accountGroup.PUT("/update_profile", group.UserHandler.UpdateProfile)
			accountGroup.PUT("/change_password", group.UserHandler.ChangePassword)
			accountGroup.POST("/logout", group.UserHandler.Logout)
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/timeline", group.TweetHandler.Timeline)
			userGroup.GET("/users_to_follow", group.UserHandler.UsersToFollow)
			userGroup.POST("/follow", group.FollowHandler.Follow)
			userGroup.DELETE("/unfollow/:id", group.FollowHandler.Unfollow)
			userGroup.GET("/followers", group.FollowHandler.GetFollowers)
			userGroup.GET("/followers/count", group.FollowHandler.GetFollowerCount)
			userGroup.GET("/following", group.FollowHandler.GetFollowing)
			userGroup.GET("/following/count", group.FollowHandler.GetFollowingCount)
			userGroup.GET("/isfollow/:id", group.FollowHandler.IsFollowing)
		}

		tweetGroup := apiGroup.Group("/tweets")
		{
			tweetGroup.GET("/:id", group.TweetHandler.GetTweet)

			authGroup := tweetGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/reply/:id", group.TweetHandler.Reply)
				authGroup.DELETE("/destroy/:id", group.TweetHandler.DeleteTweet)
			}
		}
		apiGroup.POST("/tweet", middleware.AuthMiddleware(), group.TweetHandler.CreateTweet)

		favoriteGroup := apiGroup.Group("/favorites")
		favoriteGroup.Use(middleware.AuthMiddleware())
		{
			favoriteGroup.POST("/create", group.FavoriteHandler.Store)
			favoriteGroup.DELETE("/destroy/:id", group.FavoriteHandler.Destroy)
		}

		// 公开的用户主页
		apiGroup.GET("/profiles/:username", group.UserHandler.ShowProfile)
	}

	return r
}
