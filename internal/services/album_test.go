package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumService_AddPhotosPrepends(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	sc := seedSession(t, f)
	album := NewAlbumService(f.album(), f.clock)

	first, err := album.AddPhotos(ctx, sc, [][]byte{pngPixel}, "Đà Lạt")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := album.AddPhotos(ctx, sc, [][]byte{pngPixel, pngPixel}, "")
	require.NoError(t, err)
	require.Len(t, second, 2)

	photos, err := album.Photos(ctx, "LOVE1")
	require.NoError(t, err)
	require.Len(t, photos, 3)
	// the newest batch sits in front
	assert.Equal(t, second[0].ID, photos[0].ID)
	assert.Equal(t, second[1].ID, photos[1].ID)
	assert.Equal(t, first[0].ID, photos[2].ID)
}

func TestAlbumService_FoldersGroupByName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	sc := seedSession(t, f)
	album := NewAlbumService(f.album(), f.clock)

	_, err := album.AddPhotos(ctx, sc, [][]byte{pngPixel}, "Sinh nhật")
	require.NoError(t, err)
	_, err = album.AddPhotos(ctx, sc, [][]byte{pngPixel}, "")
	require.NoError(t, err)
	_, err = album.AddPhotos(ctx, sc, [][]byte{pngPixel}, "Sinh nhật")
	require.NoError(t, err)

	folders, err := album.Folders(ctx, "LOVE1")
	require.NoError(t, err)
	require.Len(t, folders, 2)

	byName := map[string]Folder{}
	for _, folder := range folders {
		byName[folder.Name] = folder
	}
	assert.Len(t, byName["Sinh nhật"].Photos, 2)
	// unnamed photos land in the sentinel bucket
	assert.Len(t, byName[DefaultAlbumName].Photos, 1)
}

func TestAlbumService_BadPhotoRejectsBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	sc := seedSession(t, f)
	album := NewAlbumService(f.album(), f.clock)

	_, err := album.AddPhotos(ctx, sc, [][]byte{pngPixel, []byte("plain text")}, "mix")
	var v ErrValidation
	require.ErrorAs(t, err, &v)

	// nothing partial was saved
	photos, err := album.Photos(ctx, "LOVE1")
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestAlbumService_DeletePhoto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	sc := seedSession(t, f)
	album := NewAlbumService(f.album(), f.clock)

	added, err := album.AddPhotos(ctx, sc, [][]byte{pngPixel, pngPixel}, "")
	require.NoError(t, err)

	require.NoError(t, album.DeletePhoto(ctx, "LOVE1", added[0].ID))

	photos, err := album.Photos(ctx, "LOVE1")
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, added[1].ID, photos[0].ID)

	assert.ErrorIs(t, album.DeletePhoto(ctx, "LOVE1", "missing"), ErrRecordNotFound)
}
