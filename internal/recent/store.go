// Package recent tracks the products a session has viewed most recently.
package recent

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

const storeName = "recently_viewed"

// MaxItems caps the history length; the oldest entry falls off first.
const MaxItems = 10

// Store owns one session's viewing history, most recent first.
type Store struct {
	mu        sync.Mutex
	items     []catalog.Product
	key       string
	snapshots storage.Store
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
}

// NewStore restores the history for the session, degrading to an empty list
// on any read or decode failure.
func NewStore(ctx context.Context, sessionID string, snapshots storage.Store, logg *logger.Logger, m *metrics.StoreMetrics) *Store {
	s := &Store{
		key:       storage.SessionKey(sessionID, storage.KeyRecentlyViewed),
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
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	s.items = items
}

func (s *Store) warnRestore(ctx context.Context, err error) {
	s.metrics.IncRestoreFailure(storeName)
	if s.logg != nil {
		s.logg.Error(s.logg.WithStoreName(ctx, storeName), "snapshot restore failed, starting empty", err)
	}
}

// Record moves the product to the front of the history. A product already in
// the list is deduplicated, so re-viewing only promotes it. The list never
// exceeds MaxItems.
func (s *Store) Record(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]catalog.Product, 0, len(s.items)+1)
	items = append(items, product)
	for _, item := range s.items {
		if item.ID == product.ID {
			continue
		}
		items = append(items, item)
	}
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	s.items = items
	s.metrics.IncOperation(storeName, "record")
	s.persist(ctx)
}

// Clear empties the history.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.metrics.IncOperation(storeName, "clear")
	s.persist(ctx)
}

// Items returns a copy of the history, most recent first.
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
