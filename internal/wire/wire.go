package wire

import (
	"Tweetr/internal/api"
	"Tweetr/internal/api/handler"
	"Tweetr/internal/job"
	"Tweetr/internal/pkg/cron"
	"Tweetr/internal/repository"
	"Tweetr/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	tweetRepo := repository.NewTweetRepo(db)
	actionRepo := repository.NewTweetActionRepo(db)
	followRepo := repository.NewFollowRepo(db)

	followService := service.NewFollowService(followRepo, userRepo)
	tweetService := service.NewTweetService(tweetRepo, followRepo)
	actionService := service.NewTweetActionService(actionRepo, tweetRepo)
	userService := service.NewUserService(userRepo, tweetRepo, actionRepo, followRepo, followService)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		FollowHandler:   handler.NewFollowHandler(followService),
		TweetHandler:    handler.NewTweetHandler(tweetService, actionService),
		FavoriteHandler: handler.NewFavoriteHandler(actionService),
	}

	router := api.SetupRouter(handlers)

	followCountJob := job.NewFollowCountJob(followRepo)
	cronMgr := cron.NewCronManager(followCountJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
