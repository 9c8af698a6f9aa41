package cart

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

const storeName = "cart"

// Store owns one session's cart. Every item mutation runs through the pure
// transition and is then mirrored to the snapshot store; a persistence
// failure is logged and counted but never rolls back the in-memory mutation.
type Store struct {
	mu        sync.Mutex
	state     State
	key       string
	snapshots storage.Store
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
}

// NewStore restores the cart for the session, degrading to an empty cart on
// any read or decode failure.
func NewStore(ctx context.Context, sessionID string, snapshots storage.Store, logg *logger.Logger, m *metrics.StoreMetrics) *Store {
	s := &Store{
		key:       storage.SessionKey(sessionID, storage.KeyCart),
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
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.warnRestore(ctx, err)
		return
	}
	s.state = Apply(s.state, Load{Items: items})
}

func (s *Store) warnRestore(ctx context.Context, err error) {
	s.metrics.IncRestoreFailure(storeName)
	if s.logg != nil {
		s.logg.Error(s.logg.WithStoreName(ctx, storeName), "snapshot restore failed, starting empty", err)
	}
}

// AddItem merges into an existing line with the same (product, size, color)
// key or appends a new one. Quantity is trusted to be positive by callers.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, quantity int, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, AddItem{Product: product, Quantity: quantity, SelectedSize: size, SelectedColor: color})
	s.metrics.IncOperation(storeName, "add_item")
	s.persist(ctx)
}

// RemoveItem deletes the line with the given id; absent ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, RemoveItem{ID: id})
	s.metrics.IncOperation(storeName, "remove_item")
	s.persist(ctx)
}

// UpdateQuantity sets the line's quantity; zero or negative removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.state = Apply(s.state, RemoveItem{ID: id})
	} else {
		s.state = Apply(s.state, UpdateQuantity{ID: id, Quantity: quantity})
	}
	s.metrics.IncOperation(storeName, "update_quantity")
	s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, Clear{})
	s.metrics.IncOperation(storeName, "clear")
	s.persist(ctx)
}

// Toggle flips the cart panel visibility. Visibility is not persisted.
func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, Toggle{})
}

// Open shows the cart panel.
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, Open{})
}

// Close hides the cart panel.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, Close{})
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.state.Items)
}

// IsOpen reports the cart panel visibility.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOpen
}

// TotalItems sums quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItems()
}

// TotalPrice sums price times quantity across all lines.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalPrice()
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.state.Items)
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
