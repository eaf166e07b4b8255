package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence port behind the session and booking repositories.
// Values are opaque JSON documents stored whole under a single key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ProfileKey namespaces a logical key ("user", "bookings", ...) by browser profile.
func ProfileKey(profileID, key string) string {
	return fmt.Sprintf("profile:%s:%s", profileID, key)
}
