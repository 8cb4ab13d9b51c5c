package repository

import (
	"Tweetr/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetRepo_GetTweetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetRepo(db)
	actionRepo := NewTweetActionRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	tweet := seedTweet(t, db, alice.ID, "hello world", time.Now())

	require.NoError(t, actionRepo.CreateReply(ctx, &model.Reply{
		UserID:    bob.ID,
		TweetID:   tweet.ID,
		Body:      "nice one",
		CreatedAt: time.Now(),
	}))
	_, err := actionRepo.CreateFavorite(ctx, &model.Favorite{
		UserID:    bob.ID,
		TweetID:   tweet.ID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	t.Run("loads author, replies and favorites", func(t *testing.T) {
		got, err := repo.GetTweetByID(ctx, tweet.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "hello world", got.Body)
		assert.Equal(t, alice.Username, got.User.Username)
		require.Len(t, got.Replies, 1)
		assert.Equal(t, bob.Username, got.Replies[0].User.Username)
		assert.Len(t, got.Favorites, 1)
	})

	t.Run("missing tweet returns nil without error", func(t *testing.T) {
		got, err := repo.GetTweetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTweetRepo_GetTweetsByUserIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := seedTweet(t, db, alice.ID, "oldest post", base)
	newer := seedTweet(t, db, bob.ID, "newer post", base.Add(time.Minute))
	// 同一时刻发布，id 较大者排前
	tieFirst := seedTweet(t, db, alice.ID, "tie first", base.Add(2*time.Minute))
	tieSecond := seedTweet(t, db, bob.ID, "tie second", base.Add(2*time.Minute))
	seedTweet(t, db, carol.ID, "not in scope", base.Add(3*time.Minute))

	tweets, err := repo.GetTweetsByUserIDs(ctx, []uint64{alice.ID, bob.ID})
	require.NoError(t, err)
	require.Len(t, tweets, 4)

	assert.Equal(t, tieSecond.ID, tweets[0].ID)
	assert.Equal(t, tieFirst.ID, tweets[1].ID)
	assert.Equal(t, newer.ID, tweets[2].ID)
	assert.Equal(t, older.ID, tweets[3].ID)
}

func TestTweetRepo_DeleteTweetOwned(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetRepo(db)
	actionRepo := NewTweetActionRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	tweet := seedTweet(t, db, alice.ID, "hello world", time.Now())

	require.NoError(t, actionRepo.CreateReply(ctx, &model.Reply{
		UserID:    bob.ID,
		TweetID:   tweet.ID,
		Body:      "reply body",
		CreatedAt: time.Now(),
	}))
	_, err := actionRepo.CreateFavorite(ctx, &model.Favorite{
		UserID:    bob.ID,
		TweetID:   tweet.ID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	t.Run("non-owner deletes nothing", func(t *testing.T) {
		deleted, err := repo.DeleteTweetOwned(ctx, tweet.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)

		exists, err := repo.TweetExists(ctx, tweet.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("owner delete cascades replies and favorites", func(t *testing.T) {
		deleted, err := repo.DeleteTweetOwned(ctx, tweet.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		exists, err := repo.TweetExists(ctx, tweet.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		replies, err := actionRepo.GetRepliesByTweetID(ctx, tweet.ID)
		require.NoError(t, err)
		assert.Empty(t, replies)

		count, err := actionRepo.GetFavoriteCountByTweetID(ctx, tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("deleting again reports zero rows", func(t *testing.T) {
		deleted, err := repo.DeleteTweetOwned(ctx, tweet.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
