// Package session materializes the per-session state stores.
package session

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/modaloft/storefront/internal/cart"
	"github.com/modaloft/storefront/internal/checkout"
	"github.com/modaloft/storefront/internal/recent"
	"github.com/modaloft/storefront/internal/storage"
	"github.com/modaloft/storefront/internal/wishlist"
	"github.com/modaloft/storefront/pkg/config"
	"github.com/modaloft/storefront/pkg/logger"
	"github.com/modaloft/storefront/pkg/metrics"
)

// Stores bundles everything one session owns. Cart, wishlist and history are
// restored from the snapshot store on first access; the checkout wizard is
// always fresh.
type Stores struct {
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Recent   *recent.Store
	Checkout *checkout.Wizard
}

// Registry hands out the stores for a session id, creating them lazily. It
// must be constructed through NewRegistry; a zero Registry panics on use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Stores

	snapshots storage.Store
	cfg       config.CheckoutConfig
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
}

// NewRegistry wires the registry to its snapshot backend.
func NewRegistry(snapshots storage.Store, cfg config.CheckoutConfig, logg *logger.Logger, m *metrics.StoreMetrics) *Registry {
	return &Registry{
		sessions:  make(map[string]*Stores),
		snapshots: snapshots,
		cfg:       cfg,
		logg:      logg,
		metrics:   m,
	}
}

// Get returns the session's stores, materializing them on first access.
func (r *Registry) Get(ctx context.Context, sessionID string) *Stores {
	if r == nil || r.sessions == nil {
		panic("session: registry used before construction")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stores, ok := r.sessions[sessionID]; ok {
		return stores
	}
	cartStore := cart.NewStore(ctx, sessionID, r.snapshots, r.logg, r.metrics)
	stores := &Stores{
		Cart:     cartStore,
		Wishlist: wishlist.NewStore(ctx, sessionID, r.snapshots, r.logg, r.metrics),
		Recent:   recent.NewStore(ctx, sessionID, r.snapshots, r.logg, r.metrics),
		Checkout: checkout.NewWizard(cartStore, r.cfg, r.metrics),
	}
	r.sessions[sessionID] = stores
	return stores
}

// Len reports the number of materialized sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close releases the snapshot backend.
func (r *Registry) Close() error {
	var err error
	if r.snapshots != nil {
		err = multierr.Append(err, r.snapshots.Close())
	}
	return err
}
