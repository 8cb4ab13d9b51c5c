package repository

import (
	"Tweetr/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetFollow(ctx context.Context, followerID, followedID uint64) (*model.Follow, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, followerID, followedID uint64) error
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// GetFollowerIDs 获取粉丝的用户 id 列表
func (s *FollowRepoImpl) GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followed_id = ?", userID).
		Order("follower_id asc").
		Pluck("follower_id", &ids).Error
	return ids, err
}

// GetFollowingIDs 获取关注中的用户 id 列表
func (s *FollowRepoImpl) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Order("followed_id asc").
		Pluck("followed_id", &ids).Error
	return ids, err
}

func (s *FollowRepoImpl) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	result := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowRepoImpl) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	result := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowRepoImpl) GetFollow(ctx context.Context, followerID, followedID uint64) (*model.Follow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	follow := &model.Follow{}
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return follow, nil
}

// CreateFollow 条件插入，重复关注不产生第二条边也不报错
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

// DeleteFollow 删除 0 行不算错误，幂等移除
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, followerID, followedID uint64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{}).Error
}
