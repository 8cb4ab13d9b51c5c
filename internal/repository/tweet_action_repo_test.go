package repository

import (
	"Tweetr/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetActionRepo_CreateFavorite(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetActionRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	tweet := seedTweet(t, db, alice.ID, "hello world", time.Now())

	t.Run("first favorite inserts", func(t *testing.T) {
		inserted, err := repo.CreateFavorite(ctx, &model.Favorite{
			UserID:    bob.ID,
			TweetID:   tweet.ID,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("duplicate favorite is a no-op", func(t *testing.T) {
		inserted, err := repo.CreateFavorite(ctx, &model.Favorite{
			UserID:    bob.ID,
			TweetID:   tweet.ID,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.False(t, inserted)

		count, err := repo.GetFavoriteCountByTweetID(ctx, tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestTweetActionRepo_DeleteFavorite(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetActionRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	tweet := seedTweet(t, db, alice.ID, "hello world", time.Now())

	_, err := repo.CreateFavorite(ctx, &model.Favorite{
		UserID:    bob.ID,
		TweetID:   tweet.ID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteFavorite(ctx, bob.ID, tweet.ID))

	favorite, err := repo.GetFavorite(ctx, bob.ID, tweet.ID)
	require.NoError(t, err)
	assert.Nil(t, favorite)

	// 再删一次同样成功
	assert.NoError(t, repo.DeleteFavorite(ctx, bob.ID, tweet.ID))
}

func TestTweetActionRepo_GetFavoritesByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetActionRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := seedTweet(t, db, alice.ID, "first post", base)
	second := seedTweet(t, db, alice.ID, "second post", base.Add(time.Minute))

	_, err := repo.CreateFavorite(ctx, &model.Favorite{
		UserID:    bob.ID,
		TweetID:   first.ID,
		CreatedAt: base.Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = repo.CreateFavorite(ctx, &model.Favorite{
		UserID:    bob.ID,
		TweetID:   second.ID,
		CreatedAt: base.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	favorites, err := repo.GetFavoritesByUserID(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	// 最近收藏的排前，推文与作者一并加载
	assert.Equal(t, second.ID, favorites[0].TweetID)
	assert.Equal(t, "second post", favorites[0].Tweet.Body)
	assert.Equal(t, alice.Username, favorites[0].Tweet.User.Username)
	assert.Equal(t, first.ID, favorites[1].TweetID)
}

func TestTweetActionRepo_Replies(t *testing.T) {
	db := newTestDB(t)
	repo := NewTweetActionRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	tweet := seedTweet(t, db, alice.ID, "hello world", time.Now())

	reply := &model.Reply{
		UserID:    bob.ID,
		TweetID:   tweet.ID,
		Body:      "good point",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateReply(ctx, reply))
	require.NotZero(t, reply.ID)

	got, err := repo.GetReplyByID(ctx, reply.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "good point", got.Body)
	assert.Equal(t, bob.Username, got.User.Username)

	replies, err := repo.GetRepliesByTweetID(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Len(t, replies, 1)
}
