package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_Follow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	t.Run("creates the relation", func(t *testing.T) {
		require.NoError(t, env.followSvc.Follow(ctx, alice.ID, bob.ID))

		following, err := env.followSvc.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("following twice stays a single relation", func(t *testing.T) {
		require.NoError(t, env.followSvc.Follow(ctx, alice.ID, bob.ID))

		count, err := env.followSvc.GetFollowerCount(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("cannot follow yourself", func(t *testing.T) {
		err := env.followSvc.Follow(ctx, alice.ID, alice.ID)
		assert.ErrorIs(t, err, ErrFollowSelf)
	})

	t.Run("target must exist", func(t *testing.T) {
		err := env.followSvc.Follow(ctx, alice.ID, 999999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	require.NoError(t, env.followSvc.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, env.followSvc.Unfollow(ctx, alice.ID, bob.ID))

	following, err := env.followSvc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// 对不存在的关系取关同样成功
	assert.NoError(t, env.followSvc.Unfollow(ctx, alice.ID, bob.ID))
}

func TestFollowService_Lists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	carol := env.seedUser(t, "carol")

	require.NoError(t, env.followSvc.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, env.followSvc.Follow(ctx, alice.ID, carol.ID))
	require.NoError(t, env.followSvc.Follow(ctx, carol.ID, bob.ID))

	following, err := env.followSvc.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, bob.Username, following[0].Username)
	assert.Equal(t, carol.Username, following[1].Username)

	followers, err := env.followSvc.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, alice.Username, followers[0].Username)
	assert.Equal(t, carol.Username, followers[1].Username)

	none, err := env.followSvc.GetFollowing(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	followingCount, err := env.followSvc.GetFollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followingCount)

	followerCount, err := env.followSvc.GetFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followerCount)
}
