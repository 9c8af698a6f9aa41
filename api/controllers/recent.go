package controllers

import (
	"net/http"

	"github.com/modaloft/storefront/api/responses"
	"github.com/modaloft/storefront/internal/session"
)

// GetRecentlyViewed serves the session's viewing history, newest first.
func GetRecentlyViewed(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Recent
		responses.WriteSuccess(w, map[string]any{"items": store.Items()})
	}
}

// ClearRecentlyViewed empties the history.
func ClearRecentlyViewed(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := sessionStores(registry, r).Recent
		store.Clear(r.Context())
		responses.WriteSuccess(w, map[string]any{"items": store.Items()})
	}
}
