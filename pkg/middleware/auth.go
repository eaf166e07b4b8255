package middleware

import (
	"net/http"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// RequireSession rejects requests from a profile nobody is signed in to.
func RequireSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessionRepo.Find(r.Context())
			if err != nil {
				logger.Error("Failed to load session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Debug("No active session",
					zap.String("profile_id", utils.GetProfileIDFromContext(r.Context())),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
