package repository

import (
	"Tweetr/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TweetRepo interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweetByID(ctx context.Context, id uint64) (*model.Tweet, error)
	GetTweetsByUserIDs(ctx context.Context, userIDs []uint64) ([]*model.Tweet, error)
	TweetExists(ctx context.Context, id uint64) (bool, error)
	DeleteTweetOwned(ctx context.Context, tweetID, userID uint64) (int64, error)
}

type TweetRepoImpl struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) TweetRepo {
	return &TweetRepoImpl{db: db}
}

func (s *TweetRepoImpl) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Create(tweet).Error
}

func (s *TweetRepoImpl) GetTweetByID(ctx context.Context, id uint64) (*model.Tweet, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tweet := &model.Tweet{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Replies").
		Preload("Replies.User").
		Preload("Favorites").
		First(tweet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tweet, nil
}

// GetTweetsByUserIDs 按创建时间倒序返回这批用户的推文，时间线数据源
func (s *TweetRepoImpl) GetTweetsByUserIDs(ctx context.Context, userIDs []uint64) ([]*model.Tweet, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tweets := make([]*model.Tweet, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Replies").
		Preload("Replies.User").
		Preload("Favorites").
		Where("user_id IN ?", userIDs).
		Order("created_at desc, id desc").
		Find(&tweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return tweets, nil
}

func (s *TweetRepoImpl) TweetExists(ctx context.Context, id uint64) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := s.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// DeleteTweetOwned 仅当推文属于该用户时删除，级联删除回复与收藏
func (s *TweetRepoImpl) DeleteTweetOwned(ctx context.Context, tweetID, userID uint64) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", tweetID, userID).
			Delete(&model.Tweet{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		if deleted == 0 {
			return nil
		}
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		return tx.Where("tweet_id = ?", tweetID).Delete(&model.Favorite{}).Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
