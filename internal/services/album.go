package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/imageenc"
	"lovesync-backend/internal/models"
	"lovesync-backend/internal/repository"
)

// DefaultAlbumName is the bucket photos fall into when no folder was named
const DefaultAlbumName = "general"

// AlbumService handles the shared photo album. Folders are derived by
// grouping photos on AlbumName; an empty folder only exists client-side
// until its first photo is saved.
type AlbumService struct {
	album *repository.Collection[models.AlbumPhoto]
	clock Clock
}

// NewAlbumService creates a new album service
func NewAlbumService(album *repository.Collection[models.AlbumPhoto], clock Clock) *AlbumService {
	return &AlbumService{album: album, clock: clock}
}

// Photos returns every photo of a session, newest first
func (s *AlbumService) Photos(ctx context.Context, code string) ([]models.AlbumPhoto, error) {
	return s.album.Load(ctx, code)
}

// Folder is one derived album bucket
type Folder struct {
	Name   string              `json:"name"`
	Photos []models.AlbumPhoto `json:"photos"`
}

// Folders groups a session's photos by album name, preserving photo order
// inside each folder and ordering folders by first appearance
func (s *AlbumService) Folders(ctx context.Context, code string) ([]Folder, error) {
	photos, err := s.album.Load(ctx, code)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	folders := []Folder{}
	for _, p := range photos {
		name := p.AlbumName
		if name == "" {
			name = DefaultAlbumName
		}
		i, ok := index[name]
		if !ok {
			i = len(folders)
			index[name] = i
			folders = append(folders, Folder{Name: name})
		}
		folders[i].Photos = append(folders[i].Photos, p)
	}
	return folders, nil
}

// AddPhotos encodes and prepends a batch of photos into a folder. A photo
// that fails to encode rejects the whole batch; nothing partial is saved.
func (s *AlbumService) AddPhotos(ctx context.Context, sc *models.SessionContext, files [][]byte, albumName string) ([]models.AlbumPhoto, error) {
	if len(files) == 0 {
		return nil, ErrValidation{Msg: "no photos supplied"}
	}
	albumName = strings.TrimSpace(albumName)

	added := make([]models.AlbumPhoto, 0, len(files))
	for _, data := range files {
		encoded, err := imageenc.EncodeFile(data)
		if err != nil {
			log.Error().Err(err).Str("session_code", sc.Session.Code).Msg("Failed to encode album photo")
			return nil, ErrValidation{Msg: "a photo could not be processed"}
		}
		added = append(added, models.AlbumPhoto{
			ID:        uuid.New().String(),
			UserID:    sc.User.ID,
			URL:       encoded,
			Timestamp: s.clock.Now(),
			AlbumName: albumName,
		})
	}

	current, err := s.album.Load(ctx, sc.Session.Code)
	if err != nil {
		return nil, err
	}
	updated := append(append([]models.AlbumPhoto{}, added...), current...)
	if err := s.album.Save(ctx, sc.Session.Code, updated); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_code", sc.Session.Code).
		Int("count", len(added)).
		Str("album", albumName).
		Msg("Photos added")

	return added, nil
}

// DeletePhoto removes one photo by id
func (s *AlbumService) DeletePhoto(ctx context.Context, code, photoID string) error {
	current, err := s.album.Load(ctx, code)
	if err != nil {
		return err
	}

	updated := make([]models.AlbumPhoto, 0, len(current))
	found := false
	for _, p := range current {
		if p.ID == photoID {
			found = true
			continue
		}
		updated = append(updated, p)
	}
	if !found {
		return ErrRecordNotFound
	}
	if err := s.album.Save(ctx, code, updated); err != nil {
		return err
	}

	log.Info().
		Str("session_code", code).
		Str("photo_id", photoID).
		Msg("Photo deleted")

	return nil
}
