// Package kvstore defines the persistent key-value contract every other
// layer is written against, plus its backends. Keys and values are plain
// strings; there are no transactions and no multi-key writes.
package kvstore

import (
	"context"
	"errors"
)

// ErrUnavailable wraps any backend failure (disk, connection, quota). It is
// never swallowed: callers surface it rather than silently losing a write.
var ErrUnavailable = errors.New("kvstore: storage unavailable")

// Store is a synchronous string-keyed, string-valued store. Get reports
// absence through the bool, not through an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
