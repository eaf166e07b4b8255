package repository

import (
	"context"

	"hotel-booking/internal/data/entity"

	"go.uber.org/zap"
)

type RoomRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Room, error)
	FindByHotelID(ctx context.Context, hotelID string) ([]entity.Room, error)
}

type roomRepository struct {
	rooms []entity.Room
	log   *zap.Logger
}

func NewRoomRepository(rooms []entity.Room, log *zap.Logger) RoomRepository {
	return &roomRepository{
		rooms: rooms,
		log:   log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	for _, room := range r.rooms {
		if room.ID == id {
			room := room
			return &room, nil
		}
	}
	return nil, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID string) ([]entity.Room, error) {
	rooms := []entity.Room{}
	for _, room := range r.rooms {
		if room.HotelID == hotelID {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}
