package job

import (
	"Tweetr/internal/pkg/consts"
	"Tweetr/internal/pkg/redis"
	"Tweetr/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

// FollowCountJob 对账任务：重算被标脏用户的关注/粉丝计数缓存
type FollowCountJob struct {
	followRepo repository.FollowRepo
}

func NewFollowCountJob(followRepo repository.FollowRepo) *FollowCountJob {
	return &FollowCountJob{followRepo: followRepo}
}

func (s *FollowCountJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dirtyIDs, err := redis.SPopAll(ctx, consts.UserFollowDirtyKey)
	if err != nil {
		log.Error("FollowCountJob: failed to drain dirty set", "err", err)
		return
	}
	if len(dirtyIDs) == 0 {
		return
	}

	for _, idStr := range dirtyIDs {
		userID, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}

		followerCount, err := s.followRepo.GetFollowerCount(ctx, userID)
		if err != nil {
			log.Error("FollowCountJob: failed to count followers", "user_id", userID, "err", err)
			continue
		}
		followingCount, err := s.followRepo.GetFollowingCount(ctx, userID)
		if err != nil {
			log.Error("FollowCountJob: failed to count following", "user_id", userID, "err", err)
			continue
		}

		_ = redis.SetWithExpiration(ctx, consts.UserFollowerCountKey+idStr, followerCount, time.Hour*1)
		_ = redis.SetWithExpiration(ctx, consts.UserFollowingCountKey+idStr, followingCount, time.Hour*1)
	}

	log.Info("FollowCountJob: reconciled follow counts", "users", len(dirtyIDs))
}
