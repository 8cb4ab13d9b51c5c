package service

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/model"
	"Tweetr/internal/repository"
	"context"
	"time"
)

type TweetActionService interface {
	FavoriteTweet(ctx context.Context, userID, tweetID uint64) (*dto.FavoriteView, error)
	UnfavoriteTweet(ctx context.Context, userID, tweetID uint64) error
	CreateReply(ctx context.Context, userID, tweetID uint64, body string) (*dto.ReplyView, error)
}

type TweetActionServiceImpl struct {
	actionRepo repository.TweetActionRepo
	tweetRepo  repository.TweetRepo
}

func NewTweetActionService(actionRepo repository.TweetActionRepo, tweetRepo repository.TweetRepo) TweetActionService {
	return &TweetActionServiceImpl{
		actionRepo: actionRepo,
		tweetRepo:  tweetRepo,
	}
}

// FavoriteTweet find-or-create：重复收藏返回已有记录，不报错
func (s *TweetActionServiceImpl) FavoriteTweet(ctx context.Context, userID, tweetID uint64) (*dto.FavoriteView, error) {
	exists, err := s.tweetRepo.TweetExists(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTweetNotFound
	}

	_, err = s.actionRepo.CreateFavorite(ctx, &model.Favorite{
		UserID:    userID,
		TweetID:   tweetID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	favorite, err := s.actionRepo.GetFavorite(ctx, userID, tweetID)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return nil, UnExpectedError
	}
	return toFavoriteView(favorite), nil
}

// UnfavoriteTweet 按 (user, tweet) 定位删除，无记录时也算成功
func (s *TweetActionServiceImpl) UnfavoriteTweet(ctx context.Context, userID, tweetID uint64) error {
	return s.actionRepo.DeleteFavorite(ctx, userID, tweetID)
}

func (s *TweetActionServiceImpl) CreateReply(ctx context.Context, userID, tweetID uint64, body string) (*dto.ReplyView, error) {
	exists, err := s.tweetRepo.TweetExists(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTweetNotFound
	}

	reply := &model.Reply{
		UserID:    userID,
		TweetID:   tweetID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err = s.actionRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	// 回读以附带回复作者
	created, err := s.actionRepo.GetReplyByID(ctx, reply.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, UnExpectedError
	}
	return toReplyView(created), nil
}
