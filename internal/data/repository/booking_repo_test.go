package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/storage"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errBackendDown = errors.New("backend down")

// flakyStore fails reads or writes on demand and otherwise delegates to memory.
type flakyStore struct {
	*storage.MemoryStore
	failGet bool
	failSet bool
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errBackendDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return errBackendDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newBooking(id string) *entity.Booking {
	checkIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Booking{
		ID:         id,
		HotelID:    "h2",
		HotelName:  "Riverside Boutique Hotel",
		RoomID:     "r5",
		RoomName:   "Deluxe King Room",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		Nights:     3,
		Price:      229,
		TotalPrice: 687,
		GuestDetails: entity.GuestDetails{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-0100",
		},
		Status:    entity.BookingStatusPending,
		CreatedAt: checkIn.Add(-24 * time.Hour),
	}
}

func TestBookingRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, newBooking("booking-1")))
	require.NoError(t, repo.Create(ctx, newBooking("booking-2")))

	got, err := repo.FindByID(ctx, "booking-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r5", got.RoomID)

	missing, err := repo.FindByID(ctx, "booking-404")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "booking-1", all[0].ID)
	assert.Equal(t, "booking-2", all[1].ID)

	err = repo.Create(ctx, newBooking("booking-1"))
	assert.ErrorIs(t, err, entity.ErrBookingExists)
}

func TestBookingRepository_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := NewBookingRepository(store, zap.NewNop())
	require.NoError(t, first.Create(ctx, newBooking("booking-1")))

	second := newBooking("booking-2")
	second.GuestDetails.SpecialRequests = "Late arrival"
	second.Discount = 10
	require.NoError(t, first.Create(ctx, second))
	require.NoError(t, first.Create(ctx, newBooking("booking-3")))

	_, err := first.UpdateStatus(ctx, "booking-1", entity.BookingStatusConfirmed)
	require.NoError(t, err)
	_, err = first.Cancel(ctx, "booking-3")
	require.NoError(t, err)

	want, err := first.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, want, 3)

	reopened := NewBookingRepository(store, zap.NewNop())
	got, err := reopened.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	one, err := reopened.FindByID(ctx, "booking-1")
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, entity.BookingStatusConfirmed, one.Status)
	assert.True(t, one.CheckIn.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBookingRepository_CorruptDataIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	key := storage.ProfileKey(utils.DefaultProfileID, BookingsKey)
	require.NoError(t, store.Set(ctx, key, []byte("{not json")))

	repo := NewBookingRepository(store, zap.NewNop())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Create(ctx, newBooking("booking-1")))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	require.NoError(t, repo.Create(ctx, newBooking("booking-1")))

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "booking-404", entity.BookingStatusConfirmed)
		assert.ErrorIs(t, err, entity.ErrBookingNotFound)
	})

	t.Run("pending to confirmed", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, "booking-1", entity.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, got.Status)
	})

	t.Run("confirmed back to pending rejected", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "booking-1", entity.BookingStatusPending)
		assert.ErrorIs(t, err, entity.ErrInvalidTransition)

		got, err := repo.FindByID(ctx, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, got.Status)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		first, err := repo.Cancel(ctx, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, first.Status)

		second, err := repo.Cancel(ctx, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, second.Status)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "booking-1", entity.BookingStatusConfirmed)
		assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	})
}

func TestBookingRepository_ProfilesAreIsolated(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewBookingRepository(store, zap.NewNop())

	alice := utils.SetProfileContext(context.Background(), "alice")
	bob := utils.SetProfileContext(context.Background(), "bob")

	require.NoError(t, repo.Create(alice, newBooking("booking-1")))

	got, err := repo.FindByID(bob, "booking-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.FindAll(alice)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookingRepository_FailedWriteLeavesLedgerUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	repo := NewBookingRepository(store, zap.NewNop())
	require.NoError(t, repo.Create(ctx, newBooking("booking-1")))

	store.failSet = true
	err := repo.Create(ctx, newBooking("booking-2"))
	assert.ErrorIs(t, err, errBackendDown)

	_, err = repo.UpdateStatus(ctx, "booking-1", entity.BookingStatusConfirmed)
	assert.ErrorIs(t, err, errBackendDown)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.BookingStatusPending, all[0].Status)
}

func TestBookingRepository_UnreadableBackend(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: storage.NewMemoryStore(), failGet: true}
	repo := NewBookingRepository(store, zap.NewNop())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = repo.Create(ctx, newBooking("booking-1"))
	assert.ErrorIs(t, err, errBackendDown)

	// the failure is not cached; the next read retries the backend
	store.failGet = false
	require.NoError(t, repo.Create(ctx, newBooking("booking-1")))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookingRepository_CacheIsBounded(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewBookingRepository(store, zap.NewNop()).(*bookingRepository)
	repo.cacheLimit = 2

	profiles := []string{"alice", "bob", "carol", "dave"}
	for _, profile := range profiles {
		ctx := utils.SetProfileContext(context.Background(), profile)
		require.NoError(t, repo.Create(ctx, newBooking("booking-"+profile)))
		assert.LessOrEqual(t, len(repo.ledgers), 2)
	}

	for _, profile := range profiles {
		ctx := utils.SetProfileContext(context.Background(), profile)
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1, profile)
		assert.Equal(t, "booking-"+profile, all[0].ID)

		updated, err := repo.UpdateStatus(ctx, "booking-"+profile, entity.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	}
	assert.LessOrEqual(t, len(repo.ledgers), 2)

	// evicted ledgers come back from the store with their latest status
	for _, profile := range profiles {
		ctx := utils.SetProfileContext(context.Background(), profile)
		got, err := repo.FindByID(ctx, "booking-"+profile)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entity.BookingStatusConfirmed, got.Status)
	}
}
