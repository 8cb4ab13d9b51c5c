package repository

import (
	"Tweetr/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TweetActionRepo interface {
	CreateFavorite(ctx context.Context, favorite *model.Favorite) (bool, error)
	GetFavorite(ctx context.Context, userID, tweetID uint64) (*model.Favorite, error)
	DeleteFavorite(ctx context.Context, userID, tweetID uint64) error
	GetFavoritesByUserID(ctx context.Context, userID uint64) ([]*model.Favorite, error)
	GetFavoriteCountByTweetID(ctx context.Context, tweetID uint64) (int64, error)

	CreateReply(ctx context.Context, reply *model.Reply) error
	GetReplyByID(ctx context.Context, id uint64) (*model.Reply, error)
	GetRepliesByTweetID(ctx context.Context, tweetID uint64) ([]*model.Reply, error)
}

type TweetActionRepoImpl struct {
	db *gorm.DB
}

func NewTweetActionRepo(db *gorm.DB) TweetActionRepo {
	return &TweetActionRepoImpl{db: db}
}

// CreateFavorite 条件插入，已存在时不报错；返回本次是否真正插入
func (s *TweetActionRepoImpl) CreateFavorite(ctx context.Context, favorite *model.Favorite) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "tweet_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *TweetActionRepoImpl) GetFavorite(ctx context.Context, userID, tweetID uint64) (*model.Favorite, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	favorite := &model.Favorite{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		First(favorite)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return favorite, nil
}

// DeleteFavorite 删除 0 行不算错误，幂等移除
func (s *TweetActionRepoImpl) DeleteFavorite(ctx context.Context, userID, tweetID uint64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&model.Favorite{}).Error
}

func (s *TweetActionRepoImpl) GetFavoritesByUserID(ctx context.Context, userID uint64) ([]*model.Favorite, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	favorites := make([]*model.Favorite, 0)
	result := s.db.WithContext(ctx).
		Preload("Tweet").
		Preload("Tweet.User").
		Preload("Tweet.Replies").
		Preload("Tweet.Replies.User").
		Preload("Tweet.Favorites").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&favorites)
	if result.Error != nil {
		return nil, result.Error
	}
	return favorites, nil
}

func (s *TweetActionRepoImpl) GetFavoriteCountByTweetID(ctx context.Context, tweetID uint64) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("tweet_id = ?", tweetID).
		Count(&count).Error
	return count, err
}

func (s *TweetActionRepoImpl) CreateReply(ctx context.Context, reply *model.Reply) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Create(reply).Error
}

func (s *TweetActionRepoImpl) GetReplyByID(ctx context.Context, id uint64) (*model.Reply, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	reply := &model.Reply{}
	result := s.db.WithContext(ctx).
		Preload("User").
		First(reply, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reply, nil
}

func (s *TweetActionRepoImpl) GetRepliesByTweetID(ctx context.Context, tweetID uint64) ([]*model.Reply, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	replies := make([]*model.Reply, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("tweet_id = ?", tweetID).
		Order("created_at asc, id asc").
		Find(&replies)
	if result.Error != nil {
		return nil, result.Error
	}
	return replies, nil
}
