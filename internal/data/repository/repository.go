package repository

import (
	"hotel-booking/internal/data/fixture"
	"hotel-booking/pkg/storage"

	"go.uber.org/zap"
)

type Repository struct {
	Hotel   HotelRepository
	Room    RoomRepository
	Booking BookingRepository
	Session SessionRepository
	Account AccountRepository
}

// NewRepository builds the catalog from the fixtures and the profile-scoped
// repositories on top of store.
func NewRepository(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{
		Hotel:   NewHotelRepository(fixture.Hotels(), log),
		Room:    NewRoomRepository(fixture.Rooms(), log),
		Booking: NewBookingRepository(store, log),
		Session: NewSessionRepository(store, log),
		Account: NewAccountRepository(store, log),
	}
}
