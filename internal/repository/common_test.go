package repository

import (
	"Tweetr/internal/model"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 为每个测试创建独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTweet(t *testing.T, db *gorm.DB, userID uint64, body string, createdAt time.Time) *model.Tweet {
	t.Helper()

	tweet := &model.Tweet{
		UserID:    userID,
		Body:      body,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(tweet).Error)
	return tweet
}
