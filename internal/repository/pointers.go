package repository

import (
	"context"
	"fmt"

	"lovesync-backend/internal/kvstore"
)

// PointerRepository manages the two small values that record who is logged
// in on this installation: the current user id and the current session
// code. They are raw strings, not encoded records.
type PointerRepository struct {
	store kvstore.Store
	keys  Keys
}

// NewPointerRepository creates a new pointer repository
func NewPointerRepository(store kvstore.Store, keys Keys) *PointerRepository {
	return &PointerRepository{store: store, keys: keys}
}

// Current reads both pointers. ok is false when either is absent.
func (r *PointerRepository) Current(ctx context.Context) (userID, code string, ok bool, err error) {
	userID, okUser, err := r.store.Get(ctx, r.keys.CurrentUserID())
	if err != nil {
		return "", "", false, fmt.Errorf("failed to read user pointer: %w", err)
	}
	code, okCode, err := r.store.Get(ctx, r.keys.CurrentSessionCode())
	if err != nil {
		return "", "", false, fmt.Errorf("failed to read session pointer: %w", err)
	}
	if !okUser || !okCode {
		return "", "", false, nil
	}
	return userID, code, true, nil
}

// Set records the logged-in user and session
func (r *PointerRepository) Set(ctx context.Context, userID, code string) error {
	if err := r.store.Set(ctx, r.keys.CurrentUserID(), userID); err != nil {
		return fmt.Errorf("failed to write user pointer: %w", err)
	}
	if err := r.store.Set(ctx, r.keys.CurrentSessionCode(), code); err != nil {
		return fmt.Errorf("failed to write session pointer: %w", err)
	}
	return nil
}

// Clear removes both pointers. Session data stays in place so the couple
// can log back in with the same code.
func (r *PointerRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.keys.CurrentUserID()); err != nil {
		return fmt.Errorf("failed to clear user pointer: %w", err)
	}
	if err := r.store.Delete(ctx, r.keys.CurrentSessionCode()); err != nil {
		return fmt.Errorf("failed to clear session pointer: %w", err)
	}
	return nil
}
