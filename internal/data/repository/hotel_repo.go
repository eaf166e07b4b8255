package repository

import (
	"context"

	"hotel-booking/internal/data/entity"

	"go.uber.org/zap"
)

type HotelRepository interface {
	FindAll(ctx context.Context) ([]entity.Hotel, error)
	FindByID(ctx context.Context, id string) (*entity.Hotel, error)
}

type hotelRepository struct {
	hotels []entity.Hotel
	index  map[string]int
	log    *zap.Logger
}

// NewHotelRepository serves an immutable catalog snapshot.
func NewHotelRepository(hotels []entity.Hotel, log *zap.Logger) HotelRepository {
	index := make(map[string]int, len(hotels))
	for i, h := range hotels {
		index[h.ID] = i
	}

	return &hotelRepository{
		hotels: hotels,
		index:  index,
		log:    log.With(zap.String("repository", "hotel")),
	}
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]entity.Hotel, error) {
	hotels := make([]entity.Hotel, len(r.hotels))
	copy(hotels, r.hotels)
	return hotels, nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id string) (*entity.Hotel, error) {
	i, ok := r.index[id]
	if !ok {
		r.log.Debug("Hotel not in catalog", zap.String("hotel_id", id))
		return nil, nil
	}

	hotel := r.hotels[i]
	return &hotel, nil
}
