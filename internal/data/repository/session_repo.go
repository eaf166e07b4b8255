package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/storage"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// UserKey is the persisted key of a profile's session.
const UserKey = "user"

// SessionRepository holds at most one signed-in user per profile.
type SessionRepository interface {
	Find(ctx context.Context) (*entity.UserSession, error)
	Save(ctx context.Context, session *entity.UserSession) error
	Delete(ctx context.Context) error
}

type sessionRepository struct {
	store storage.Store
	log   *zap.Logger
}

func NewSessionRepository(store storage.Store, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		log:   log.With(zap.String("repository", "session")),
	}
}

// Find returns nil, nil when the profile has no usable session.
func (r *sessionRepository) Find(ctx context.Context) (*entity.UserSession, error) {
	profileID := utils.GetProfileIDFromContext(ctx)

	raw, err := r.store.Get(ctx, storage.ProfileKey(profileID, UserKey))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load session",
			zap.Error(err),
			zap.String("profile_id", profileID),
		)
		return nil, nil
	}

	var session entity.UserSession
	if err := json.Unmarshal(raw, &session); err != nil {
		r.log.Warn("Discarding corrupt session data",
			zap.Error(err),
			zap.String("profile_id", profileID),
		)
		return nil, nil
	}

	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.UserSession) error {
	profileID := utils.GetProfileIDFromContext(ctx)

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.store.Set(ctx, storage.ProfileKey(profileID, UserKey), raw); err != nil {
		r.log.Error("Failed to save session",
			zap.Error(err),
			zap.String("profile_id", profileID),
			zap.String("user_id", session.ID),
		)
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	profileID := utils.GetProfileIDFromContext(ctx)

	if err := r.store.Delete(ctx, storage.ProfileKey(profileID, UserKey)); err != nil {
		r.log.Error("Failed to delete session",
			zap.Error(err),
			zap.String("profile_id", profileID),
		)
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
