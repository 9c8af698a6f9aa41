package controllers

import (
	"net/http"

	"github.com/modaloft/storefront/api/middleware"
	"github.com/modaloft/storefront/internal/session"
)

// sessionStores resolves the caller's stores from the session middleware.
func sessionStores(registry *session.Registry, r *http.Request) *session.Stores {
	return registry.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
}
