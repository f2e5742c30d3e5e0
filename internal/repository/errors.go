package repository

import "errors"

// Sentinel errors shared across repo/service/handler layers. Handlers map
// these to HTTP statuses with errors.Is; none of them is fatal.
var (
	// ErrNotFound indicates no session exists for the given code.
	ErrNotFound = errors.New("session not found")

	// ErrAlreadyExists indicates a create collided with an existing code.
	ErrAlreadyExists = errors.New("session code already exists")

	// ErrPairFull indicates the session already has two members.
	ErrPairFull = errors.New("session already has two users")
)
