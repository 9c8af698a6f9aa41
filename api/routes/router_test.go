package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/session"
	"github.com/modaloft/storefront/internal/storage"
	"github.com/modaloft/storefront/pkg/config"
	"github.com/modaloft/storefront/pkg/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Seed()
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		App:      config.AppConfig{Env: config.AppEnvDev, Port: "8080"},
		Checkout: config.CheckoutConfig{TaxRate: 0.08, FreeShippingThreshold: 50},
	}
	snapshots := storage.NewMemory()
	promRegistry := prometheus.NewRegistry()
	registry := session.NewRegistry(snapshots, cfg.Checkout, nil, metrics.NewStoreMetrics(promRegistry))
	return NewRouter(cfg, nil, cat, registry, snapshots, promRegistry)
}

func doJSON(t *testing.T, router http.Handler, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return envelope.Data
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics: expected 200, got %d", rec.Code)
	}
}

func TestProductListingAndFilters(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sid := uuid.NewString()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["total"].(float64) == 0 {
		t.Fatal("expected seeded products")
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products?sort=price-asc&in_stock=true", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products?price_min=abc", sid, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for junk price_min, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/categories", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductViewFeedsRecentlyViewed(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sid := uuid.NewString()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/1", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/recently-viewed", sid, nil)
	data := decodeData(t, rec)
	items := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 viewed product, got %d", len(items))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/does-not-exist", sid, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/recently-viewed", sid, nil)
	data = decodeData(t, rec)
	if items, ok := data["items"].([]any); ok && len(items) != 0 {
		t.Fatal("expected cleared history")
	}
}

func TestCartFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sid := uuid.NewString()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sid, map[string]any{
		"product_id": "1", "quantity": 2, "size": "M", "color": "Black",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// same variant merges instead of duplicating
	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sid, map[string]any{
		"product_id": "1", "quantity": 1, "size": "M", "color": "Black",
	})
	data := decodeData(t, rec)
	if got := data["total_items"].(float64); got != 3 {
		t.Fatalf("expected 3 items after merge, got %v", got)
	}
	if items := data["items"].([]any); len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/cart/items/1-M-Black", sid, map[string]any{"quantity": 0})
	data = decodeData(t, rec)
	if got := data["total_items"].(float64); got != 0 {
		t.Fatalf("expected empty cart after zero quantity, got %v", got)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sid, map[string]any{
		"product_id": "missing", "quantity": 1,
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sid, map[string]any{
		"product_id": "1", "quantity": 0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity add, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/toggle", sid, nil)
	data = decodeData(t, rec)
	if data["is_open"] != true {
		t.Fatal("expected toggle to open the cart")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	first := uuid.NewString()
	second := uuid.NewString()

	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", first, map[string]any{
		"product_id": "2", "quantity": 1,
	})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/cart", second, nil)
	data := decodeData(t, rec)
	if got := data["total_items"].(float64); got != 0 {
		t.Fatalf("expected empty cart for other session, got %v", got)
	}
}

func TestMissingSessionHeaderGetsOne(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	issued := rec.Header().Get("X-Session-Id")
	if _, err := uuid.Parse(issued); err != nil {
		t.Fatalf("expected issued session id, got %q", issued)
	}
}

func TestWishlistFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sid := uuid.NewString()

	rec := doJSON(t, router, http.MethodPut, "/api/v1/wishlist/3", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	// retry is a no-op
	rec = doJSON(t, router, http.MethodPut, "/api/v1/wishlist/3", sid, nil)
	data := decodeData(t, rec)
	if got := data["count"].(float64); got != 1 {
		t.Fatalf("expected count 1 after duplicate add, got %v", got)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/wishlist/3", sid, nil)
	data = decodeData(t, rec)
	if got := data["count"].(float64); got != 0 {
		t.Fatalf("expected empty wishlist, got %v", got)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/v1/wishlist/unknown", sid, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sid := uuid.NewString()

	// empty cart cannot enter checkout
	rec := doJSON(t, router, http.MethodPost, "/api/v1/checkout", sid, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty cart, got %d", rec.Code)
	}

	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sid, map[string]any{
		"product_id": "1", "quantity": 2, "size": "M", "color": "Black",
	})
	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sid, map[string]any{
		"product_id": "2", "quantity": 1,
	})

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// invalid shipping is rejected with field details
	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/shipping", sid, map[string]any{"email": "nope"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	shipping := map[string]any{
		"email": "jane@example.com", "first_name": "Jane", "last_name": "Doe",
		"address": "123 Main St", "city": "Springfield", "state": "IL",
		"zip_code": "62704", "method": "express",
	}
	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/shipping", sid, shipping)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	payment := map[string]any{
		"method": "card", "card_number": "4111 1111 1111 1111", "expiry": "12/28",
		"cvv": "123", "cardholder_name": "Jane Doe", "same_as_shipping": true,
	}
	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/payment", sid, payment)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/promo", sid, map[string]any{"code": "bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown promo, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/checkout/quote", sid, nil)
	data := decodeData(t, rec)
	if data["total"] != "81009.99" {
		t.Fatalf("expected total 81009.99, got %v", data["total"])
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/order", sid, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data = decodeData(t, rec)
	if len(data["order_id"].(string)) != 9 {
		t.Fatalf("expected 9-char order id, got %v", data["order_id"])
	}

	// the order clears the cart
	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", sid, nil)
	data = decodeData(t, rec)
	if got := data["total_items"].(float64); got != 0 {
		t.Fatalf("expected cart cleared by order, got %v", got)
	}
}
