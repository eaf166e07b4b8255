package utils

import (
	"context"
)

type contextKey string

const (
	ProfileIDKey contextKey = "profile_id"

	DefaultProfileID = "default"
)

// GetProfileIDFromContext returns the browser profile the request acts for.
func GetProfileIDFromContext(ctx context.Context) string {
	profileVal := ctx.Value(ProfileIDKey)
	if profileVal == nil {
		return DefaultProfileID
	}

	profileID, ok := profileVal.(string)
	if !ok || profileID == "" {
		return DefaultProfileID
	}

	return profileID
}

func SetProfileContext(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, ProfileIDKey, profileID)
}
