package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/imageenc"
	"lovesync-backend/internal/models"
	"lovesync-backend/internal/repository"
)

// ErrRecordNotFound indicates an id targeted nothing in its collection
var ErrRecordNotFound = errors.New("record not found")

// FeedService handles the memory feed. Posts are kept most-recent-first;
// every mutation rewrites the whole collection.
type FeedService struct {
	posts *repository.Collection[models.Post]
	clock Clock
}

// NewFeedService creates a new feed service
func NewFeedService(posts *repository.Collection[models.Post], clock Clock) *FeedService {
	return &FeedService{posts: posts, clock: clock}
}

// Posts returns the feed for a session, newest first
func (s *FeedService) Posts(ctx context.Context, code string) ([]models.Post, error) {
	return s.posts.Load(ctx, code)
}

// AddPost prepends a new post. image is optional raw image bytes; a
// rejected encode rejects the whole post.
func (s *FeedService) AddPost(ctx context.Context, sc *models.SessionContext, content string, image []byte) (*models.Post, error) {
	if strings.TrimSpace(content) == "" && len(image) == 0 {
		return nil, ErrValidation{Msg: "post needs content or an image"}
	}

	var imageURL string
	if len(image) > 0 {
		encoded, err := imageenc.EncodeFile(image)
		if err != nil {
			log.Error().Err(err).Str("session_code", sc.Session.Code).Msg("Failed to encode post image")
			return nil, ErrValidation{Msg: "image could not be processed"}
		}
		imageURL = encoded
	}

	post := models.Post{
		ID:        uuid.New().String(),
		UserID:    sc.User.ID,
		Content:   strings.TrimSpace(content),
		ImageURL:  imageURL,
		Timestamp: s.clock.Now(),
		Likes:     0,
		Comments:  []models.Comment{},
	}

	current, err := s.posts.Load(ctx, sc.Session.Code)
	if err != nil {
		return nil, err
	}
	updated := append([]models.Post{post}, current...)
	if err := s.posts.Save(ctx, sc.Session.Code, updated); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_code", sc.Session.Code).
		Str("post_id", post.ID).
		Msg("Post created")

	return &post, nil
}

// LikePost increments the like counter on one post
func (s *FeedService) LikePost(ctx context.Context, code, postID string) (*models.Post, error) {
	current, err := s.posts.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	for i := range current {
		if current[i].ID == postID {
			current[i].Likes++
			if err := s.posts.Save(ctx, code, current); err != nil {
				return nil, err
			}
			return &current[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

// DeletePost removes one post by id, keeping the rest in order
func (s *FeedService) DeletePost(ctx context.Context, code, postID string) error {
	current, err := s.posts.Load(ctx, code)
	if err != nil {
		return err
	}

	updated := make([]models.Post, 0, len(current))
	found := false
	for _, p := range current {
		if p.ID == postID {
			found = true
			continue
		}
		updated = append(updated, p)
	}
	if !found {
		return ErrRecordNotFound
	}
	if err := s.posts.Save(ctx, code, updated); err != nil {
		return err
	}

	log.Info().
		Str("session_code", code).
		Str("post_id", postID).
		Msg("Post deleted")

	return nil
}
