package service

import (
	"Tweetr/internal/model"
	"Tweetr/internal/repository"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 在内存数据库上装配全部服务，不依赖外部 redis
type testEnv struct {
	db *gorm.DB

	userRepo   repository.UserRepo
	tweetRepo  repository.TweetRepo
	actionRepo repository.TweetActionRepo
	followRepo repository.FollowRepo

	followSvc FollowService
	tweetSvc  TweetService
	actionSvc TweetActionService
	userSvc   UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Reply{},
		&model.Favorite{},
		&model.Follow{},
	)
	require.NoError(t, err)

	env := &testEnv{db: db}
	env.userRepo = repository.NewUserRepo(db)
	env.tweetRepo = repository.NewTweetRepo(db)
	env.actionRepo = repository.NewTweetActionRepo(db)
	env.followRepo = repository.NewFollowRepo(db)

	env.followSvc = NewFollowService(env.followRepo, env.userRepo)
	env.tweetSvc = NewTweetService(env.tweetRepo, env.followRepo)
	env.actionSvc = NewTweetActionService(env.actionRepo, env.tweetRepo)
	env.userSvc = NewUserService(env.userRepo, env.tweetRepo, env.actionRepo, env.followRepo, env.followSvc)

	return env
}

func (e *testEnv) seedUser(t *testing.T, username string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}
