package middleware

import (
	"net/http"
	"regexp"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// ProfileHeader names the browser profile a request acts for.
const ProfileHeader = "X-Profile-ID"

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Profile puts the requesting profile into the context. Requests without
// the header share the default profile.
func Profile(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID := r.Header.Get(ProfileHeader)
			if profileID == "" {
				profileID = utils.DefaultProfileID
			}

			if !profileIDPattern.MatchString(profileID) {
				logger.Warn("Rejected profile id", zap.String("profile_id", profileID))
				utils.ResponseBadRequest(w, "Invalid "+ProfileHeader+" header", nil)
				return
			}

			ctx := utils.SetProfileContext(r.Context(), profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
