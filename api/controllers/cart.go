package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modaloft/storefront/api/responses"
	"github.com/modaloft/storefront/api/validators"
	"github.com/modaloft/storefront/internal/cart"
	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/session"
	pkgerrors "github.com/modaloft/storefront/pkg/errors"
	"github.com/modaloft/storefront/pkg/logger"
)

type cartResponse struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice int             `json:"total_price"`
	IsOpen     bool            `json:"is_open"`
}

func cartView(store *cart.Store) cartResponse {
	return cartResponse{
		Items:      store.Items(),
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
		IsOpen:     store.IsOpen(),
	}
}

// GetCart serves the session's cart with its running totals.
func GetCart(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartView(sessionStores(registry, r).Cart))
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// AddCartItem resolves the product and merges it into the cart.
func AddCartItem(cat *catalog.Catalog, registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := cat.FindByID(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		store := sessionStores(registry, r).Cart
		store.AddItem(r.Context(), product, payload.Quantity, payload.Size, payload.Color)
		responses.WriteSuccessStatus(w, http.StatusCreated, cartView(store))
	}
}

type updateCartItemRequest struct {
	// Quantity at or below zero removes the line.
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity.
func UpdateCartItem(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := sessionStores(registry, r).Cart
		store.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), payload.Quantity)
		responses.WriteSuccess(w, cartView(store))
	}
}

// RemoveCartItem deletes one line.
func RemoveCartItem(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Cart
		store.RemoveItem(r.Context(), chi.URLParam(r, "id"))
		responses.WriteSuccess(w, cartView(store))
	}
}

// ClearCart empties the cart.
func ClearCart(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Cart
		store.Clear(r.Context())
		responses.WriteSuccess(w, cartView(store))
	}
}

// CartVisibility flips or sets the cart panel state. The action is bound in
// the route ("open", "close" or "toggle").
func CartVisibility(registry *session.Registry, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Cart
		switch action {
		case "open":
			store.Open()
		case "close":
			store.Close()
		default:
			store.Toggle()
		}
		responses.WriteSuccess(w, map[string]bool{"is_open": store.IsOpen()})
	}
}
