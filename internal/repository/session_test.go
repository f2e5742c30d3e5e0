package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/models"
)

func newSessionRepo() *SessionRepository {
	return NewSessionRepository(kvstore.NewMemoryStore(), Keys{})
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepo()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	long := models.User{ID: "u1", Name: "Long", Age: 25}

	session, err := repo.Create(ctx, "LOVE1", long, start)
	require.NoError(t, err)
	assert.Equal(t, "LOVE1", session.Code)
	assert.Equal(t, models.SchemaVersion, session.SchemaVersion)

	got, err := repo.Get(ctx, "LOVE1")
	require.NoError(t, err)
	assert.Equal(t, "LOVE1", got.Code)
	assert.True(t, got.StartDate.Equal(start))
	require.Len(t, got.Users, 1)
	assert.Equal(t, long, got.Users[0])
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo := newSessionRepo()
	_, err := repo.Get(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepository_CreateCollision(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepo()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, "ABC", models.User{ID: "a", Name: "A", Age: 20}, start)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "ABC", models.User{ID: "b", Name: "B", Age: 21}, start)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// the original session is unchanged
	got, err := repo.Get(ctx, "ABC")
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "a", got.Users[0].ID)
}

func TestSessionRepository_Join(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepo()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Join(ctx, "NOPE", models.User{ID: "b"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Create(ctx, "LOVE1", models.User{ID: "u1", Name: "Long", Age: 25}, start)
	require.NoError(t, err)

	session, err := repo.Join(ctx, "LOVE1", models.User{ID: "u2", Name: "Trang", Age: 23})
	require.NoError(t, err)
	require.Len(t, session.Users, 2)
	assert.Equal(t, "u1", session.Users[0].ID)
	assert.Equal(t, "u2", session.Users[1].ID)

	_, err = repo.Join(ctx, "LOVE1", models.User{ID: "u3", Name: "C", Age: 30})
	assert.ErrorIs(t, err, ErrPairFull)
}

func TestSessionRepository_SaveLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepo()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	session, err := repo.Create(ctx, "LOVE1", models.User{ID: "u1", Name: "Long", Age: 25}, start)
	require.NoError(t, err)

	// two writers race; the later save fully replaces the earlier one
	first := *session
	first.Users[0].Name = "First"
	require.NoError(t, repo.Save(ctx, &first))

	second := *session
	second.Users = []models.User{{ID: "u1", Name: "Second", Age: 26}}
	require.NoError(t, repo.Save(ctx, &second))

	got, err := repo.Get(ctx, "LOVE1")
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "Second", got.Users[0].Name)
}

func TestPointerRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewPointerRepository(store, Keys{})

	_, _, ok, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "u1", "LOVE1"))

	userID, code, ok, err := repo.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "LOVE1", code)

	require.NoError(t, repo.Clear(ctx))
	_, _, ok, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPointerRepository_OnePointerMissing(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	keys := Keys{}
	repo := NewPointerRepository(store, keys)

	require.NoError(t, store.Set(ctx, keys.CurrentUserID(), "u1"))

	_, _, ok, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
