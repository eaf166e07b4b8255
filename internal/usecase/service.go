package usecase

import (
	"hotel-booking/internal/clock"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Hotel   HotelService
	Search  SearchService
	Auth    AuthService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, clk clock.Clock, log *zap.Logger) *Service {
	search := NewSearchService(log)

	return &Service{
		Hotel:   NewHotelService(repo, config.Catalog, log),
		Search:  search,
		Auth:    NewAuthService(repo, log),
		Booking: NewBookingService(repo, search, clk, config.Booking, log),
	}
}
