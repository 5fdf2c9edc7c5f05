package cache

import (
	"context"
	"testing"
	"time"

	"lenglogs/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTokenStore(client), mr
}

func TestTokenStore_SavePairAndExists(t *testing.T) {
	store, mr := setupTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	pair := &jwt.TokenPair{AccessTokenID: "a1", RefreshTokenID: "r1"}
	require.NoError(t, store.SavePair(ctx, userID, pair, time.Minute, time.Hour))

	ok, err := store.Exists(ctx, jwt.AccessToken, userID, "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, mr.Exists("refresh_token:"+userID.String()+":r1"))
	assert.Equal(t, time.Minute, mr.TTL("access_token:"+userID.String()+":a1"))

	mr.FastForward(2 * time.Minute)
	ok, err = store.Exists(ctx, jwt.AccessToken, userID, "a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStore_Revoke(t *testing.T) {
	store, _ := setupTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, jwt.RefreshToken, userID, "r1", time.Hour))

	revoked, err := store.Revoke(ctx, jwt.RefreshToken, userID, "r1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.Revoke(ctx, jwt.RefreshToken, userID, "r1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_RevokeAllKeepsOtherUsers(t *testing.T) {
	store, mr := setupTokenStore(t)
	ctx := context.Background()
	userID, otherID := uuid.New(), uuid.New()

	require.NoError(t, store.Save(ctx, jwt.AccessToken, userID, "a1", time.Hour))
	require.NoError(t, store.Save(ctx, jwt.AccessToken, userID, "a2", time.Hour))
	require.NoError(t, store.Save(ctx, jwt.RefreshToken, userID, "r1", time.Hour))
	require.NoError(t, store.Save(ctx, jwt.AccessToken, otherID, "b1", time.Hour))

	require.NoError(t, store.RevokeAll(ctx, userID))

	assert.Equal(t, []string{"access_token:" + otherID.String() + ":b1"}, mr.Keys())
}
