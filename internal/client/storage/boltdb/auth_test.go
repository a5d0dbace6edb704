package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkowalski/auctionhub/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "auth_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	auth := &storage.AuthData{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		UpdatedAt:    time.Now().Unix(),
	}

	// Before anything is stored, GetAuth reports not found.
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.RefreshToken, got.RefreshToken)
	assert.Equal(t, auth.UpdatedAt, got.UpdatedAt)

	err = store.DeleteAuth(ctx)
	require.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_SaveAuthOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	first := &storage.AuthData{AccessToken: "a1", RefreshToken: "r1"}
	second := &storage.AuthData{AccessToken: "a2", RefreshToken: "r2"}

	require.NoError(t, store.SaveAuth(ctx, first))
	require.NoError(t, store.SaveAuth(ctx, second))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
	assert.Equal(t, "r2", got.RefreshToken)
}

func TestStorage_DeleteAuthEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.DeleteAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "auth_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, store.Close())

	// The pair must survive a process restart.
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.AccessToken)
	assert.Equal(t, "r1", got.RefreshToken)
}
