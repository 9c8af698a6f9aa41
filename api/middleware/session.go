package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/modaloft/storefront/pkg/logger"
)

// SessionIDHeader carries the client's session identifier. A missing or
// malformed value gets a fresh uuid, echoed back so the client can adopt it.
const SessionIDHeader = "X-Session-Id"

func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionIDHeader)
			if _, err := uuid.Parse(sessionID); err != nil {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
