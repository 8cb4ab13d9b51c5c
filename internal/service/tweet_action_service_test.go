package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetActionService_FavoriteTweet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	tweet, err := env.tweetSvc.CreateTweet(ctx, alice.ID, "favorite me")
	require.NoError(t, err)

	t.Run("creates the favorite", func(t *testing.T) {
		view, err := env.actionSvc.FavoriteTweet(ctx, bob.ID, tweet.ID)
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, bob.ID, view.UserID)
		assert.Equal(t, tweet.ID, view.TweetID)
	})

	t.Run("favoriting again returns the existing record", func(t *testing.T) {
		first, err := env.actionSvc.FavoriteTweet(ctx, bob.ID, tweet.ID)
		require.NoError(t, err)
		second, err := env.actionSvc.FavoriteTweet(ctx, bob.ID, tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := env.actionRepo.GetFavoriteCountByTweetID(ctx, tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing tweet", func(t *testing.T) {
		_, err := env.actionSvc.FavoriteTweet(ctx, bob.ID, 999999)
		assert.ErrorIs(t, err, ErrTweetNotFound)
	})
}

func TestTweetActionService_UnfavoriteTweet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	tweet, err := env.tweetSvc.CreateTweet(ctx, alice.ID, "favorite me")
	require.NoError(t, err)

	_, err = env.actionSvc.FavoriteTweet(ctx, bob.ID, tweet.ID)
	require.NoError(t, err)

	require.NoError(t, env.actionSvc.UnfavoriteTweet(ctx, bob.ID, tweet.ID))

	count, err := env.actionRepo.GetFavoriteCountByTweetID(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// 重复取消同样成功
	assert.NoError(t, env.actionSvc.UnfavoriteTweet(ctx, bob.ID, tweet.ID))
}

func TestTweetActionService_CreateReply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	tweet, err := env.tweetSvc.CreateTweet(ctx, alice.ID, "reply to me")
	require.NoError(t, err)

	t.Run("creates the reply with author", func(t *testing.T) {
		view, err := env.actionSvc.CreateReply(ctx, bob.ID, tweet.ID, "here you go")
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, tweet.ID, view.TweetID)
		assert.Equal(t, "here you go", view.Body)
		require.NotNil(t, view.User)
		assert.Equal(t, bob.Username, view.User.Username)
	})

	t.Run("reply shows up on the tweet", func(t *testing.T) {
		got, err := env.tweetSvc.GetTweet(ctx, tweet.ID)
		require.NoError(t, err)
		require.Len(t, got.Replies, 1)
		assert.Equal(t, "here you go", got.Replies[0].Body)
	})

	t.Run("missing tweet", func(t *testing.T) {
		_, err := env.actionSvc.CreateReply(ctx, bob.ID, 999999, "into the void")
		assert.ErrorIs(t, err, ErrTweetNotFound)
	})
}
