package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type HotelService interface {
	FetchHotels(ctx context.Context, query entity.HotelQuery, sort entity.SortCriterion) ([]response.HotelResponse, error)
	GetHotelByID(ctx context.Context, id string) (*response.HotelResponse, error)
	GetHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error)
	GetRoom(ctx context.Context, hotelID, roomID string) (*response.RoomResponse, error)
}

type hotelService struct {
	repo   *repository.Repository
	config utils.CatalogConfig
	log    *zap.Logger
}

func NewHotelService(repo *repository.Repository, config utils.CatalogConfig, log *zap.Logger) HotelService {
	return &hotelService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) FetchHotels(ctx context.Context, query entity.HotelQuery, sort entity.SortCriterion) ([]response.HotelResponse, error) {
	if err := wait(ctx, s.config.FetchDelay); err != nil {
		return nil, err
	}

	catalog, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load catalog", zap.Error(err))
		return nil, fmt.Errorf("fetch hotels: %w", err)
	}

	hotels := SortHotels(FilterHotels(catalog, query), sort)

	s.log.Debug("Hotels fetched",
		zap.String("location", query.Location),
		zap.String("sort", string(sort)),
		zap.Int("count", len(hotels)),
	)

	responses := make([]response.HotelResponse, 0, len(hotels))
	for i := range hotels {
		responses = append(responses, hotelToResponse(&hotels[i]))
	}

	return responses, nil
}

func (s *hotelService) GetHotelByID(ctx context.Context, id string) (*response.HotelResponse, error) {
	if err := wait(ctx, s.config.LookupDelay); err != nil {
		return nil, err
	}

	hotel, err := s.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := hotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) GetHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
	if _, err := s.findHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find rooms of hotel %s: %w", hotelID, err)
	}

	responses := make([]response.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, roomToResponse(&rooms[i]))
	}

	return responses, nil
}

func (s *hotelService) GetRoom(ctx context.Context, hotelID, roomID string) (*response.RoomResponse, error) {
	_, room, err := findHotelRoom(ctx, s.repo, hotelID, roomID)
	if err != nil {
		return nil, err
	}

	resp := roomToResponse(room)
	return &resp, nil
}

func (s *hotelService) findHotel(ctx context.Context, id string) (*entity.Hotel, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find hotel %s: %w", id, err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s: %w", id, entity.ErrHotelNotFound)
	}
	return hotel, nil
}

// findHotelRoom resolves a hotel and one of its rooms. A room belonging to
// another hotel is not found.
func findHotelRoom(ctx context.Context, repo *repository.Repository, hotelID, roomID string) (*entity.Hotel, *entity.Room, error) {
	hotel, err := repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, nil, fmt.Errorf("find hotel %s: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, nil, fmt.Errorf("hotel %s: %w", hotelID, entity.ErrHotelNotFound)
	}

	room, err := repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("find room %s: %w", roomID, err)
	}
	if room == nil || room.HotelID != hotel.ID {
		return nil, nil, fmt.Errorf("room %s of hotel %s: %w", roomID, hotelID, entity.ErrRoomNotFound)
	}

	return hotel, room, nil
}

func hotelToResponse(hotel *entity.Hotel) response.HotelResponse {
	return response.HotelToResponse(hotel, DiscountedNightly(hotel.Price, hotel.Discount))
}

func roomToResponse(room *entity.Room) response.RoomResponse {
	return response.RoomToResponse(room, DiscountedNightly(room.Price, room.Discount))
}
