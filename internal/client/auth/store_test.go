package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkowalski/auctionhub/internal/client/storage"
	"github.com/jkowalski/auctionhub/internal/models"
)

// mockAuthStorage implements storage.AuthStorage for testing
type mockAuthStorage struct {
	data      *storage.AuthData
	saveErr   error
	getErr    error
	deleteErr error
}

func (m *mockAuthStorage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *auth
	m.data = &cp
	return nil
}

func (m *mockAuthStorage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.data == nil {
		return nil, storage.ErrAuthNotFound
	}
	cp := *m.data
	return &cp, nil
}

func (m *mockAuthStorage) DeleteAuth(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.data == nil {
		return storage.ErrAuthNotFound
	}
	m.data = nil
	return nil
}

func TestStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	mock := &mockAuthStorage{}
	store := NewStore(mock)

	_, ok := store.Get()
	assert.False(t, ok)

	creds := models.Credentials{AccessToken: "a1", RefreshToken: "r1"}
	require.NoError(t, store.Set(ctx, creds))

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, creds, got)

	// The pair was written through to storage.
	require.NotNil(t, mock.data)
	assert.Equal(t, "a1", mock.data.AccessToken)
	assert.Equal(t, "r1", mock.data.RefreshToken)

	require.NoError(t, store.Clear(ctx))

	_, ok = store.Get()
	assert.False(t, ok)
	assert.Nil(t, mock.data)
}

func TestStore_ClearNotifiesSubscribers(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	notified := 0
	store.Subscribe(func() { notified++ })

	require.NoError(t, store.Set(ctx, models.Credentials{AccessToken: "a1", RefreshToken: "r1"}))
	assert.Equal(t, 0, notified)

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, 1, notified)

	// Clearing an empty store is fine and still notifies.
	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, 2, notified)
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	mock := &mockAuthStorage{
		data: &storage.AuthData{AccessToken: "a1", RefreshToken: "r1"},
	}
	store := NewStore(mock)

	require.NoError(t, store.Load(ctx))

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "a1", got.AccessToken)
	assert.Equal(t, "r1", got.RefreshToken)
}

func TestStore_LoadEmptyStorage(t *testing.T) {
	store := NewStore(&mockAuthStorage{})

	require.NoError(t, store.Load(context.Background()))

	_, ok := store.Get()
	assert.False(t, ok)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)
	require.NoError(t, store.Set(ctx, models.Credentials{AccessToken: "a1", RefreshToken: "r1"}))

	got, ok := store.Get()
	require.True(t, ok)
	got.AccessToken = "mutated"

	again, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "a1", again.AccessToken)
}
