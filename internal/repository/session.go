package repository

import (
	"context"
	"fmt"
	"time"

	"lovesync-backend/internal/codec"
	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/models"
)

// SessionRepository handles store operations for pairing sessions
type SessionRepository struct {
	store kvstore.Store
	keys  Keys
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store kvstore.Store, keys Keys) *SessionRepository {
	return &SessionRepository{store: store, keys: keys}
}

// Get retrieves a session by its code. Matching is exact-string; callers
// normalize case before calling.
func (r *SessionRepository) Get(ctx context.Context, code string) (*models.PairingSession, error) {
	raw, ok, err := r.store.Get(ctx, r.keys.Session(code))
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	session, err := codec.Decode[models.PairingSession](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", code, err)
	}
	return &session, nil
}

// Save overwrites the stored session record. There is no concurrency
// check: the last writer wins.
func (r *SessionRepository) Save(ctx context.Context, session *models.PairingSession) error {
	session.SchemaVersion = models.SchemaVersion
	raw, err := codec.Encode(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, r.keys.Session(session.Code), raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Create creates a new session for code with its first user. Fails with
// ErrAlreadyExists when the code is taken; the existing session is left
// untouched.
func (r *SessionRepository) Create(ctx context.Context, code string, firstUser models.User, startDate time.Time) (*models.PairingSession, error) {
	_, err := r.Get(ctx, code)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if err != ErrNotFound {
		return nil, err
	}

	session := &models.PairingSession{
		SchemaVersion: models.SchemaVersion,
		Code:          code,
		StartDate:     startDate,
		Users:         []models.User{firstUser},
	}
	if err := r.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Join appends a second user to an existing session. Fails with
// ErrNotFound when the code is unknown and ErrPairFull when the session
// already has two members.
func (r *SessionRepository) Join(ctx context.Context, code string, secondUser models.User) (*models.PairingSession, error) {
	session, err := r.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if session.Full() {
		return nil, ErrPairFull
	}

	session.Users = append(session.Users, secondUser)
	if err := r.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
