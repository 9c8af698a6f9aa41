package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modaloft/storefront/api/responses"
	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/session"
	"github.com/modaloft/storefront/internal/wishlist"
	pkgerrors "github.com/modaloft/storefront/pkg/errors"
	"github.com/modaloft/storefront/pkg/logger"
)

type wishlistResponse struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

func wishlistView(store *wishlist.Store) wishlistResponse {
	return wishlistResponse{Items: store.Items(), Count: store.Count()}
}

// GetWishlist serves the session's wishlist.
func GetWishlist(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, wishlistView(sessionStores(registry, r).Wishlist))
	}
}

// AddWishlistItem saves the product; re-adding is a no-op, which makes the
// route safe to retry.
func AddWishlistItem(cat *catalog.Catalog, registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, ok := cat.FindByID(chi.URLParam(r, "productID"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		store := sessionStores(registry, r).Wishlist
		store.Add(r.Context(), product)
		responses.WriteSuccess(w, wishlistView(store))
	}
}

// RemoveWishlistItem drops the product; absent products are a no-op.
func RemoveWishlistItem(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Wishlist
		store.Remove(r.Context(), chi.URLParam(r, "productID"))
		responses.WriteSuccess(w, wishlistView(store))
	}
}

// ClearWishlist empties the wishlist.
func ClearWishlist(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Wishlist
		store.Clear(r.Context())
		responses.WriteSuccess(w, wishlistView(store))
	}
}
