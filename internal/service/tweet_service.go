package service

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/model"
	"Tweetr/internal/repository"
	"context"
	"time"
)

type TweetService interface {
	CreateTweet(ctx context.Context, userID uint64, body string) (*dto.TweetView, error)
	GetTweet(ctx context.Context, tweetID uint64) (*dto.TweetView, error)
	DeleteTweet(ctx context.Context, userID, tweetID uint64) error
	GetTimeline(ctx context.Context, userID uint64) ([]*dto.TweetView, error)
}

type TweetServiceImpl struct {
	tweetRepo  repository.TweetRepo
	followRepo repository.FollowRepo
}

func NewTweetService(tweetRepo repository.TweetRepo, followRepo repository.FollowRepo) TweetService {
	return &TweetServiceImpl{
		tweetRepo:  tweetRepo,
		followRepo: followRepo,
	}
}

func (s *TweetServiceImpl) CreateTweet(ctx context.Context, userID uint64, body string) (*dto.TweetView, error) {
	tweet := &model.Tweet{
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}

	// 回读以附带作者、回复、收藏
	created, err := s.tweetRepo.GetTweetByID(ctx, tweet.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, UnExpectedError
	}
	return toTweetView(created), nil
}

func (s *TweetServiceImpl) GetTweet(ctx context.Context, tweetID uint64) (*dto.TweetView, error) {
	tweet, err := s.tweetRepo.GetTweetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}
	return toTweetView(tweet), nil
}

// DeleteTweet 仅作者可删，非作者与不存在统一返回不存在，避免泄露推文存在性
func (s *TweetServiceImpl) DeleteTweet(ctx context.Context, userID, tweetID uint64) error {
	deleted, err := s.tweetRepo.DeleteTweetOwned(ctx, tweetID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrTweetNotFound
	}
	return nil
}

// GetTimeline 关注集合并上自己，推文按创建时间倒序
func (s *TweetServiceImpl) GetTimeline(ctx context.Context, userID uint64) ([]*dto.TweetView, error) {
	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ownerIDs := append(followingIDs, userID)

	tweets, err := s.tweetRepo.GetTweetsByUserIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	return toTweetViews(tweets), nil
}
