package services

import (
	"time"

	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/models"
	"lovesync-backend/internal/repository"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) Today() time.Time {
	return time.Date(c.now.Year(), c.now.Month(), c.now.Day(), 0, 0, 0, 0, c.now.Location())
}

type fixture struct {
	store    *kvstore.MemoryStore
	keys     repository.Keys
	sessions *repository.SessionRepository
	pointers *repository.PointerRepository
	pair     *PairService
	clock    fixedClock
}

func newFixture(now time.Time) *fixture {
	store := kvstore.NewMemoryStore()
	keys := repository.Keys{}
	sessions := repository.NewSessionRepository(store, keys)
	pointers := repository.NewPointerRepository(store, keys)
	clock := fixedClock{now: now}
	return &fixture{
		store:    store,
		keys:     keys,
		sessions: sessions,
		pointers: pointers,
		pair:     NewPairService(sessions, pointers, clock),
		clock:    clock,
	}
}

func (f *fixture) posts() *repository.Collection[models.Post] {
	return repository.NewCollection[models.Post](f.store, f.keys, repository.CollectionPosts)
}

func (f *fixture) album() *repository.Collection[models.AlbumPhoto] {
	return repository.NewCollection[models.AlbumPhoto](f.store, f.keys, repository.CollectionAlbum)
}

func (f *fixture) goals() *repository.Collection[models.Goal] {
	return repository.NewCollection[models.Goal](f.store, f.keys, repository.CollectionGoals)
}
