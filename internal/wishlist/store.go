// Package wishlist holds a session's saved products as a flat, ordered set.
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/storage"
	"github.com/modaloft/storefront/pkg/logger"
	"github.com/modaloft/storefront/pkg/metrics"
)

const storeName = "wishlist"

// Store owns one session's wishlist. Products are identified by id only;
// size and color play no part here, unlike cart lines.
type Store struct {
	mu        sync.Mutex
	items     []catalog.Product
	key       string
	snapshots storage.Store
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
}

// NewStore restores the wishlist for the session, degrading to an empty list
// on any read or decode failure.
func NewStore(ctx context.Context, sessionID string, snapshots storage.Store, logg *logger.Logger, m *metrics.StoreMetrics) *Store {
	s := &Store{
		key:       storage.SessionKey(sessionID, storage.KeyWishlist),
		snapshots: snapshots,
		logg:      logg,
		metrics:   m,
	}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	raw, err := s.snapshots.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.warnRestore(ctx, err)
		}
		return
	}
	var items []catalog.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		s.warnRestore(ctx, err)
		return
	}
	s.items = items
}

func (s *Store) warnRestore(ctx context.Context, err error) {
	s.metrics.IncRestoreFailure(storeName)
	if s.logg != nil {
		s.logg.Error(s.logg.WithStoreName(ctx, storeName), "snapshot restore failed, starting empty", err)
	}
}

// Add appends the product unless it is already present. Adding an existing
// product is a no-op, it never duplicates or reorders.
func (s *Store) Add(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == product.ID {
			return
		}
	}
	s.items = append(s.items, product)
	s.metrics.IncOperation(storeName, "add")
	s.persist(ctx)
}

// Remove deletes the product by id; absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]catalog.Product, 0, len(s.items))
	removed := false
	for _, item := range s.items {
		if item.ID == productID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return
	}
	s.items = items
	s.metrics.IncOperation(storeName, "remove")
	s.persist(ctx)
}

// Contains reports whether the product is on the wishlist.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.metrics.IncOperation(storeName, "clear")
	s.persist(ctx)
}

// Items returns a copy of the wishlist in insertion order.
func (s *Store) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil
	}
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of saved products.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err == nil {
		err = s.snapshots.Set(ctx, s.key, raw)
	}
	if err != nil {
		s.metrics.IncPersistFailure(storeName)
		if s.logg != nil {
			s.logg.Error(s.logg.WithStoreName(ctx, storeName), "snapshot persist failed", err)
		}
	}
}
