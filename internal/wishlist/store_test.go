package wishlist

import (
	"context"
	"testing"

	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/storage"
)

var (
	jacket = catalog.Product{ID: "3", Name: "Leather Jacket", Price: 89900}
	watch  = catalog.Product{ID: "6", Name: "Minimalist Watch", Price: 129900}
)

func TestAddIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(ctx, "s1", storage.NewMemory(), nil, nil)

	store.Add(ctx, jacket)
	store.Add(ctx, jacket)
	store.Add(ctx, watch)

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "3" || items[1].ID != "6" {
		t.Fatalf("insertion order lost: %v", items)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(ctx, "s1", storage.NewMemory(), nil, nil)
	store.Add(ctx, jacket)

	store.Remove(ctx, "nope")
	if store.Count() != 1 {
		t.Fatalf("expected 1 item, got %d", store.Count())
	}
	store.Remove(ctx, "3")
	if store.Count() != 0 {
		t.Fatalf("expected empty wishlist, got %d", store.Count())
	}
}

func TestContains(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(ctx, "s1", storage.NewMemory(), nil, nil)
	store.Add(ctx, jacket)

	if !store.Contains("3") {
		t.Fatal("expected wishlist to contain product 3")
	}
	if store.Contains("6") {
		t.Fatal("did not expect product 6")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(ctx, "s1", storage.NewMemory(), nil, nil)
	store.Add(ctx, jacket)
	store.Add(ctx, watch)

	store.Clear(ctx)
	if store.Count() != 0 {
		t.Fatalf("expected empty wishlist, got %d", store.Count())
	}
}

func TestPersistsAcrossStores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	snapshots := storage.NewMemory()

	store := NewStore(ctx, "s1", snapshots, nil, nil)
	store.Add(ctx, jacket)
	store.Add(ctx, watch)
	store.Remove(ctx, "6")

	again := NewStore(ctx, "s1", snapshots, nil, nil)
	items := again.Items()
	if len(items) != 1 || items[0].ID != "3" {
		t.Fatalf("unexpected restored wishlist: %v", items)
	}
}

func TestRestoreFromCorruptSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	snapshots := storage.NewMemory()
	key := storage.SessionKey("s1", storage.KeyWishlist)
	if err := snapshots.Set(ctx, key, []byte("[broken")); err != nil {
		t.Fatal(err)
	}

	store := NewStore(ctx, "s1", snapshots, nil, nil)
	if store.Count() != 0 {
		t.Fatal("expected empty wishlist after corrupt snapshot")
	}
	store.Add(ctx, jacket)
	if !store.Contains("3") {
		t.Fatal("degraded store should stay usable")
	}
}
