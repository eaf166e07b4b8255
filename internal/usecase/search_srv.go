package usecase

import (
	"context"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// SearchService keeps the current search of each profile in memory only.
type SearchService interface {
	Get(ctx context.Context) response.SearchParamsResponse
	Update(ctx context.Context, req *request.UpdateSearchParamsRequest) (*response.SearchParamsResponse, error)
	Reset(ctx context.Context) response.SearchParamsResponse
	Current(ctx context.Context) entity.SearchParams
}

type searchService struct {
	mu     sync.Mutex
	params map[string]entity.SearchParams
	log    *zap.Logger
}

func NewSearchService(log *zap.Logger) SearchService {
	return &searchService{
		params: make(map[string]entity.SearchParams),
		log:    log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Current(ctx context.Context) entity.SearchParams {
	profileID := utils.GetProfileIDFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	params, ok := s.params[profileID]
	if !ok {
		return entity.DefaultSearchParams()
	}
	return params
}

func (s *searchService) Get(ctx context.Context) response.SearchParamsResponse {
	return response.SearchParamsToResponse(s.Current(ctx), utils.DateLayout)
}

func (s *searchService) Update(ctx context.Context, req *request.UpdateSearchParamsRequest) (*response.SearchParamsResponse, error) {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	profileID := utils.GetProfileIDFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	params, ok := s.params[profileID]
	if !ok {
		params = entity.DefaultSearchParams()
	}

	if req.Location != nil {
		params.Location = *req.Location
	}
	if req.Guests != nil {
		params.Guests = *req.Guests
	}
	if req.Rooms != nil {
		params.Rooms = *req.Rooms
	}
	if req.CheckIn != nil {
		date, ok := parseOptionalDate(*req.CheckIn)
		if !ok {
			errs["check_in"] = "Invalid date, expected " + utils.DateLayout
		}
		params.CheckIn = date
	}
	if req.CheckOut != nil {
		date, ok := parseOptionalDate(*req.CheckOut)
		if !ok {
			errs["check_out"] = "Invalid date, expected " + utils.DateLayout
		}
		params.CheckOut = date
	}

	if params.CheckIn != nil && params.CheckOut != nil && !params.CheckOut.After(*params.CheckIn) {
		if _, exists := errs["check_out"]; !exists {
			errs["check_out"] = "Check-out must be after check-in"
		}
	}

	if len(errs) > 0 {
		s.log.Warn("Search params validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	s.params[profileID] = params

	resp := response.SearchParamsToResponse(params, utils.DateLayout)
	return &resp, nil
}

func (s *searchService) Reset(ctx context.Context) response.SearchParamsResponse {
	profileID := utils.GetProfileIDFromContext(ctx)

	s.mu.Lock()
	delete(s.params, profileID)
	s.mu.Unlock()

	return response.SearchParamsToResponse(entity.DefaultSearchParams(), utils.DateLayout)
}

// parseOptionalDate treats an empty value as a cleared date.
func parseOptionalDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}

	date, err := utils.ParseDate(value)
	if err != nil {
		return nil, false
	}
	return &date, true
}
