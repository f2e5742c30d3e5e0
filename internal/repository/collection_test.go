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

func TestCollection_AbsentYieldsEmpty(t *testing.T) {
	repo := NewCollection[models.Post](kvstore.NewMemoryStore(), Keys{}, CollectionPosts)

	items, err := repo.Load(context.Background(), "LOVE1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCollection_MalformedYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	keys := Keys{}
	repo := NewCollection[models.Goal](store, keys, CollectionGoals)

	require.NoError(t, store.Set(ctx, keys.Collection("LOVE1", CollectionGoals), "{broken"))

	items, err := repo.Load(ctx, "LOVE1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollection_SaveLoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCollection[models.Post](kvstore.NewMemoryStore(), Keys{}, CollectionPosts)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := []models.Post{
		{ID: "p3", UserID: "u1", Content: "third", Timestamp: ts, Comments: []models.Comment{}},
		{ID: "p2", UserID: "u2", Content: "second", Timestamp: ts, Comments: []models.Comment{}},
		{ID: "p1", UserID: "u1", Content: "first", Timestamp: ts, Comments: []models.Comment{}},
	}
	require.NoError(t, repo.Save(ctx, "LOVE1", posts))

	loaded, err := repo.Load(ctx, "LOVE1")
	require.NoError(t, err)
	assert.Equal(t, posts, loaded)
}

func TestCollection_NamespacedByCodeAndName(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	keys := Keys{}
	goalsA := NewCollection[models.Goal](store, keys, CollectionGoals)
	goalsB := NewCollection[models.Goal](store, keys, CollectionGoals)

	require.NoError(t, goalsA.Save(ctx, "AAA", []models.Goal{{ID: "g1", Title: "a"}}))
	require.NoError(t, goalsB.Save(ctx, "BBB", []models.Goal{{ID: "g2", Title: "b"}}))

	a, err := goalsA.Load(ctx, "AAA")
	require.NoError(t, err)
	require.Len(t, a, 1)
	assert.Equal(t, "g1", a[0].ID)

	b, err := goalsB.Load(ctx, "BBB")
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, "g2", b[0].ID)
}

func TestKeys_Layout(t *testing.T) {
	keys := Keys{}
	assert.Equal(t, "lovesync_LOVE1", keys.Session("LOVE1"))
	assert.Equal(t, "lovesync_LOVE1_posts", keys.Collection("LOVE1", CollectionPosts))
	assert.Equal(t, "lovesync_current_user_id", keys.CurrentUserID())
	assert.Equal(t, "lovesync_current_session_code", keys.CurrentSessionCode())

	custom := Keys{Prefix: "app_"}
	assert.Equal(t, "app_LOVE1_album", custom.Collection("LOVE1", CollectionAlbum))
}
