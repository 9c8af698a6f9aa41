package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the snapshot persistence surface the state stores mirror into.
// Values are opaque JSON blobs; the backends never interpret them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Pinger is implemented by backends that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Snapshot key names, one per session-scoped store.
const (
	KeyCart           = "cart"
	KeyWishlist       = "wishlist"
	KeyRecentlyViewed = "recentlyViewed"
)

// SessionKey namespaces a snapshot key under a client session.
func SessionKey(sessionID, name string) string {
	return fmt.Sprintf("sess:%s:%s", sessionID, name)
}
