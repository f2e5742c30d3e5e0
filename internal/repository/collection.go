package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/codec"
	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/models"
)

// Collection names used in composite keys
const (
	CollectionPosts = "posts"
	CollectionAlbum = "album"
	CollectionGoals = "goals"
)

// envelope is the stored shape of every collection value
type envelope[T any] struct {
	SchemaVersion int `json:"schema_version"`
	Items         []T `json:"items"`
}

// Collection handles store operations for one session-scoped collection.
// Writes replace the whole collection; there is no incremental update.
type Collection[T any] struct {
	store kvstore.Store
	keys  Keys
	name  string
}

// NewCollection creates a repository for the named collection
func NewCollection[T any](store kvstore.Store, keys Keys, name string) *Collection[T] {
	return &Collection[T]{store: store, keys: keys, name: name}
}

// Load returns the stored items for code, or an empty collection when the
// key is absent. A malformed value also yields the empty collection: the
// data for that key is considered lost until the next save.
func (c *Collection[T]) Load(ctx context.Context, code string) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.keys.Collection(code, c.name))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.name, err)
	}
	if !ok {
		return []T{}, nil
	}

	env, err := codec.Decode[envelope[T]](raw)
	if err != nil {
		if errors.Is(err, codec.ErrParse) {
			log.Warn().
				Str("session_code", code).
				Str("collection", c.name).
				Err(err).
				Msg("Discarding malformed collection value")
			return []T{}, nil
		}
		return nil, err
	}
	if env.Items == nil {
		return []T{}, nil
	}
	return env.Items, nil
}

// Save overwrites the stored collection with items. The last writer wins.
func (c *Collection[T]) Save(ctx context.Context, code string, items []T) error {
	raw, err := codec.Encode(envelope[T]{
		SchemaVersion: models.SchemaVersion,
		Items:         items,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	if err := c.store.Set(ctx, c.keys.Collection(code, c.name), raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.name, err)
	}
	return nil
}
