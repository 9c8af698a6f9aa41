package controllers

import (
	"net/http"

	"github.com/modaloft/storefront/api/responses"
	"github.com/modaloft/storefront/internal/storage"
	"github.com/modaloft/storefront/pkg/config"
	pkgerrors "github.com/modaloft/storefront/pkg/errors"
	"github.com/modaloft/storefront/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the snapshot backend when it supports it; the in-memory
// backend is always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, snapshots storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		if pinger, ok := snapshots.(storage.Pinger); ok {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot backend unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
