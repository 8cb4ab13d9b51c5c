package service

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/model"
	"Tweetr/internal/pkg/consts"
	"Tweetr/internal/pkg/redis"
	"Tweetr/internal/repository"
	"context"
	"strconv"
	"time"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followedID uint64) error
	Unfollow(ctx context.Context, followerID, followedID uint64) error
	IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowers(ctx context.Context, userID uint64) ([]*dto.UserDTO, error)
	GetFollowing(ctx context.Context, userID uint64) ([]*dto.UserDTO, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

type fetchCountFunc func(ctx context.Context, userID uint64) (int64, error)

// Follow 关注，重复关注是成功的 no-op
func (s *FollowServiceImpl) Follow(ctx context.Context, followerID, followedID uint64) error {
	if followerID == followedID {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	count, err := s.GetFollowingCount(ctx, followerID)
	if err != nil {
		return err
	}
	if count >= consts.MaxFollowingCount {
		return ErrFollowLimit
	}

	err = s.followRepo.CreateFollow(ctx, &model.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	s.invalidateCounts(ctx, followerID, followedID)
	return nil
}

// Unfollow 取消关注，边不存在时同样返回成功
func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerID, followedID uint64) error {
	err := s.followRepo.DeleteFollow(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	s.invalidateCounts(ctx, followerID, followedID)
	return nil
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error) {
	follow, err := s.followRepo.GetFollow(ctx, followerID, followedID)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}

func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userID,
		consts.UserFollowerCountKey,
		s.followRepo.GetFollowerCount,
	)
}

func (s *FollowServiceImpl) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userID,
		consts.UserFollowingCountKey,
		s.followRepo.GetFollowingCount,
	)
}

func (s *FollowServiceImpl) GetFollowers(ctx context.Context, userID uint64) ([]*dto.UserDTO, error) {
	ids, err := s.followRepo.GetFollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.UserDTO{}, nil
	}
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func (s *FollowServiceImpl) GetFollowing(ctx context.Context, userID uint64) ([]*dto.UserDTO, error) {
	ids, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.UserDTO{}, nil
	}
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func (s *FollowServiceImpl) getCountCommon(
	ctx context.Context,
	userID uint64,
	keyPrefix string,
	fetchDB fetchCountFunc,
) (int64, error) {
	key := keyPrefix + strconv.FormatUint(userID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := fetchDB(ctx, userID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

// invalidateCounts 变更后删除双方计数缓存，并标脏等待对账任务重算
func (s *FollowServiceImpl) invalidateCounts(ctx context.Context, followerID, followedID uint64) {
	followerStr := strconv.FormatUint(followerID, 10)
	followedStr := strconv.FormatUint(followedID, 10)

	_ = redis.DeleteKey(ctx, consts.UserFollowingCountKey+followerStr)
	_ = redis.DeleteKey(ctx, consts.UserFollowerCountKey+followedStr)
	_ = redis.SAdd(ctx, consts.UserFollowDirtyKey, followerStr, followedStr)
}
