package service

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/model"
	"Tweetr/internal/pkg/consts"
	"Tweetr/internal/pkg/redis"
	"Tweetr/internal/pkg/security"
	"Tweetr/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type UserService interface {
	Signup(ctx context.Context, dto *dto.SignupDTO) (string, error)
	Login(ctx context.Context, dto *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetMe(ctx context.Context, userID uint64) (*dto.ProfileView, error)
	GetProfileByUsername(ctx context.Context, username string) (*dto.ProfileView, error)
	UpdateProfile(ctx context.Context, userID uint64, dto *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, userID uint64, dto *dto.ChangePasswordDTO) error
	RecommendUsers(ctx context.Context, userID uint64, limit int) ([]*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	tweetRepo  repository.TweetRepo
	actionRepo repository.TweetActionRepo
	followRepo repository.FollowRepo
	followSvc  FollowService
}

func NewUserService(
	userRepo repository.UserRepo,
	tweetRepo repository.TweetRepo,
	actionRepo repository.TweetActionRepo,
	followRepo repository.FollowRepo,
	followSvc FollowService,
) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		tweetRepo:  tweetRepo,
		actionRepo: actionRepo,
		followRepo: followRepo,
		followSvc:  followSvc,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (string, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, signupDTO.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExist
	}

	existing, err = s.userRepo.GetUserByUsername(ctx, signupDTO.Username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUsernameExist
	}

	user := &model.User{}
	if err = copier.Copy(user, signupDTO); err != nil {
		return "", err
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return "", err
	}
	user.Password = passwordHash

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID)
}

func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credentialDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID)
}

// Logout 吊销 Token：签名写入黑名单直至过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.buildProfile(ctx, user)
}

func (s *UserServiceImpl) GetProfileByUsername(ctx context.Context, username string) (*dto.ProfileView, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.buildProfile(ctx, user)
}

// buildProfile 并发装配个人主页的各独立分支
func (s *UserServiceImpl) buildProfile(ctx context.Context, user *model.User) (*dto.ProfileView, error) {
	profile := &dto.ProfileView{
		User: toUserDTO(user),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tweets, err := s.tweetRepo.GetTweetsByUserIDs(gCtx, []uint64{user.ID})
		if err != nil {
			return err
		}
		profile.Tweets = toTweetViews(tweets)
		return nil
	})
	g.Go(func() error {
		following, err := s.followSvc.GetFollowing(gCtx, user.ID)
		if err != nil {
			return err
		}
		profile.Following = following
		return nil
	})
	g.Go(func() error {
		followers, err := s.followSvc.GetFollowers(gCtx, user.ID)
		if err != nil {
			return err
		}
		profile.Followers = followers
		return nil
	})
	g.Go(func() error {
		count, err := s.followSvc.GetFollowingCount(gCtx, user.ID)
		if err != nil {
			return err
		}
		profile.FollowingCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.followSvc.GetFollowerCount(gCtx, user.ID)
		if err != nil {
			return err
		}
		profile.FollowerCount = count
		return nil
	})
	g.Go(func() error {
		favorites, err := s.actionRepo.GetFavoritesByUserID(gCtx, user.ID)
		if err != nil {
			return err
		}
		views := make([]*dto.FavoriteView, 0, len(favorites))
		for _, f := range favorites {
			views = append(views, toFavoriteViewWithTweet(f))
		}
		profile.Favorites = views
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 邮箱变更时确认新邮箱未被其他用户占用
	if updateDTO.Email != user.Email {
		other, err := s.userRepo.GetUserByEmail(ctx, updateDTO.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, ErrEmailExist
		}
	}
	if updateDTO.Username != user.Username {
		other, err := s.userRepo.GetUserByUsername(ctx, updateDTO.Username)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, ErrUsernameExist
		}
	}

	if err = copier.Copy(user, updateDTO); err != nil {
		return nil, err
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(changeDTO.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	user.Password = passwordHash

	return s.userRepo.UpdateUser(ctx, user)
}

// RecommendUsers 推荐关注：排除自己和已关注的用户，按 id 升序稳定返回
func (s *UserServiceImpl) RecommendUsers(ctx context.Context, userID uint64, limit int) ([]*dto.UserDTO, error) {
	if limit <= 0 {
		limit = consts.RecommendLimit
	}

	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	excludeIDs := append(followingIDs, userID)

	users, err := s.userRepo.ListUsersExcluding(ctx, excludeIDs, limit)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}
