package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/storage"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingsKey is the persisted key of a profile's ledger.
const BookingsKey = "bookings"

const maxCachedLedgers = 1024

// BookingRepository is the booking ledger. Bookings are never removed;
// cancellation is a status change.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error)
	Cancel(ctx context.Context, id string) (*entity.Booking, error)
}

type bookingRepository struct {
	store storage.Store
	log   *zap.Logger

	mu         sync.Mutex
	ledgers    map[string][]entity.Booking // by profile, loaded on first access
	cacheLimit int
}

func NewBookingRepository(store storage.Store, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		store:      store,
		log:        log.With(zap.String("repository", "booking")),
		ledgers:    make(map[string][]entity.Booking),
		cacheLimit: maxCachedLedgers,
	}
}

// load returns the profile's ledger. Absent or corrupt data is an empty
// ledger; only a failing backend is reported, and then nothing is cached.
// Callers hold r.mu.
func (r *bookingRepository) load(ctx context.Context, profileID string) ([]entity.Booking, error) {
	if ledger, ok := r.ledgers[profileID]; ok {
		return ledger, nil
	}

	key := storage.ProfileKey(profileID, BookingsKey)
	raw, err := r.store.Get(ctx, key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		r.remember(profileID, nil)
		return nil, nil
	case err != nil:
		r.log.Error("Failed to load bookings",
			zap.Error(err),
			zap.String("profile_id", profileID),
		)
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	var ledger []entity.Booking
	if err := json.Unmarshal(raw, &ledger); err != nil {
		r.log.Warn("Discarding corrupt bookings data",
			zap.Error(err),
			zap.String("profile_id", profileID),
		)
		ledger = nil
	}

	r.remember(profileID, ledger)
	return ledger, nil
}

// remember caches a persisted ledger. A full cache drops another profile,
// which is reloaded from the store on its next access.
func (r *bookingRepository) remember(profileID string, ledger []entity.Booking) {
	if _, ok := r.ledgers[profileID]; !ok && len(r.ledgers) >= r.cacheLimit {
		for id := range r.ledgers {
			delete(r.ledgers, id)
			break
		}
	}
	r.ledgers[profileID] = ledger
}

// persist writes the whole ledger and only then makes it current.
func (r *bookingRepository) persist(ctx context.Context, profileID string, ledger []entity.Booking) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	if err := r.store.Set(ctx, storage.ProfileKey(profileID, BookingsKey), raw); err != nil {
		r.log.Error("Failed to persist bookings",
			zap.Error(err),
			zap.String("profile_id", profileID),
			zap.Int("count", len(ledger)),
		)
		return fmt.Errorf("persist bookings: %w", err)
	}

	r.remember(profileID, ledger)
	return nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	profileID := utils.GetProfileIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx, profileID)
	if err != nil {
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	for _, b := range ledger {
		if b.ID == booking.ID {
			return fmt.Errorf("create booking %s: %w", booking.ID, entity.ErrBookingExists)
		}
	}

	next := make([]entity.Booking, len(ledger), len(ledger)+1)
	copy(next, ledger)
	next = append(next, *booking)

	if err := r.persist(ctx, profileID, next); err != nil {
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	profileID := utils.GetProfileIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx, profileID)
	if err != nil {
		// unreadable storage reads as an empty ledger
		return nil, nil
	}

	for _, b := range ledger {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}

	return nil, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	profileID := utils.GetProfileIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx, profileID)
	if err != nil {
		return []entity.Booking{}, nil
	}

	bookings := make([]entity.Booking, len(ledger))
	copy(bookings, ledger)
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	profileID := utils.GetProfileIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("update booking %s status: %w", id, err)
	}

	idx := -1
	for i, b := range ledger {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("booking %s: %w", id, entity.ErrBookingNotFound)
	}

	current := ledger[idx]
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("booking %s %s -> %s: %w", id, current.Status, status, entity.ErrInvalidTransition)
	}

	if current.Status == status {
		return &current, nil
	}

	next := make([]entity.Booking, len(ledger))
	copy(next, ledger)
	next[idx].Status = status

	if err := r.persist(ctx, profileID, next); err != nil {
		return nil, fmt.Errorf("update booking %s status to %s: %w", id, status, err)
	}

	updated := next[idx]
	r.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)

	return &updated, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id string) (*entity.Booking, error) {
	return r.UpdateStatus(ctx, id, entity.BookingStatusCancelled)
}
