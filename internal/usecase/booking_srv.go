package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-booking/internal/clock"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingService drives a booking from checkout (draft) through payment to
// confirmation or cancellation.
type BookingService interface {
	Quote(ctx context.Context, hotelID, roomID string) (*response.QuoteResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ProcessPayment(ctx context.Context, bookingID string, req *request.PaymentRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.BookingResponse, error)

	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetConfirmation(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	CurrentBooking(ctx context.Context) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	search SearchService
	clock  clock.Clock
	config utils.BookingConfig
	log    *zap.Logger

	mu       sync.Mutex
	payments map[string]struct{} // profile/booking pairs being authorized
	current  map[string]string   // profile -> booking id of the open checkout
}

func NewBookingService(
	repo *repository.Repository,
	search SearchService,
	clk clock.Clock,
	config utils.BookingConfig,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		search:   search,
		clock:    clk,
		config:   config,
		log:      log.With(zap.String("service", "booking")),
		payments: make(map[string]struct{}),
		current:  make(map[string]string),
	}
}

// stay is the date range and party size a price is computed for.
type stay struct {
	checkIn  time.Time
	checkOut time.Time
	guests   int
}

// resolveStay fills empty request values from the current search, then with
// a one night stay starting today. Problems are reported into errs.
func (s *bookingService) resolveStay(ctx context.Context, checkIn, checkOut string, guests int, errs map[string]string) stay {
	params := s.search.Current(ctx)

	result := stay{
		checkIn: s.clock.Now().UTC().Truncate(24 * time.Hour),
		guests:  params.Guests,
	}
	if params.CheckIn != nil {
		result.checkIn = *params.CheckIn
	}
	if checkIn != "" {
		date, err := utils.ParseDate(checkIn)
		if err != nil {
			errs["check_in"] = "Invalid date, expected " + utils.DateLayout
		} else {
			result.checkIn = date
		}
	}

	result.checkOut = result.checkIn.AddDate(0, 0, 1)
	if params.CheckOut != nil {
		result.checkOut = *params.CheckOut
	}
	if checkOut != "" {
		date, err := utils.ParseDate(checkOut)
		if err != nil {
			errs["check_out"] = "Invalid date, expected " + utils.DateLayout
		} else {
			result.checkOut = date
		}
	}

	if guests > 0 {
		result.guests = guests
	}

	if _, bad := errs["check_out"]; !bad && !result.checkOut.After(result.checkIn) {
		errs["check_out"] = "Check-out must be after check-in"
	}

	return result
}

func (s *bookingService) Quote(ctx context.Context, hotelID, roomID string) (*response.QuoteResponse, error) {
	hotel, room, err := findHotelRoom(ctx, s.repo, hotelID, roomID)
	if err != nil {
		return nil, err
	}

	errs := make(map[string]string)
	st := s.resolveStay(ctx, "", "", 0, errs)
	if len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	nights := Nights(st.checkIn, st.checkOut)
	total := TotalPrice(room.Price, room.Discount, nights)

	return &response.QuoteResponse{
		HotelID:      hotel.ID,
		HotelName:    hotel.Name,
		RoomID:       room.ID,
		RoomName:     room.Name,
		CheckIn:      st.checkIn.Format(utils.DateLayout),
		CheckOut:     st.checkOut.Format(utils.DateLayout),
		Guests:       st.guests,
		Nights:       nights,
		Price:        room.Price,
		Discount:     room.Discount,
		NightlyPrice: DiscountedNightly(room.Price, room.Discount),
		TotalPrice:   total,
		Tax:          Tax(total),
		GrandTotal:   GrandTotal(total),
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	session, err := s.repo.Session.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, entity.ErrNotAuthenticated
	}

	hotel, room, err := findHotelRoom(ctx, s.repo, req.HotelID, req.RoomID)
	if err != nil {
		return nil, err
	}

	prefillGuest(&req.GuestDetails, session)

	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}
	st := s.resolveStay(ctx, req.CheckIn, req.CheckOut, req.Guests, errs)

	if len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	nights := Nights(st.checkIn, st.checkOut)
	booking := &entity.Booking{
		ID:         utils.GenerateBookingID(),
		HotelID:    hotel.ID,
		HotelName:  hotel.Name,
		RoomID:     room.ID,
		RoomName:   room.Name,
		CheckIn:    st.checkIn,
		CheckOut:   st.checkOut,
		Guests:     st.guests,
		Nights:     nights,
		Price:      room.Price,
		Discount:   room.Discount,
		TotalPrice: TotalPrice(room.Price, room.Discount, nights),
		GuestDetails: entity.GuestDetails{
			FirstName:       req.GuestDetails.FirstName,
			LastName:        req.GuestDetails.LastName,
			Email:           req.GuestDetails.Email,
			Phone:           req.GuestDetails.Phone,
			SpecialRequests: req.GuestDetails.SpecialRequests,
		},
		Status:    entity.BookingStatusPending,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.setCurrent(ctx, booking.ID)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("hotel_id", booking.HotelID),
		zap.String("room_id", booking.RoomID),
		zap.Int("nights", booking.Nights),
		zap.Int64("total_price", booking.TotalPrice),
	)

	resp := bookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, bookingID string, req *request.PaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(entity.BookingStatusConfirmed) {
		return nil, fmt.Errorf("pay booking %s in status %s: %w", bookingID, booking.Status, entity.ErrInvalidTransition)
	}

	release, ok := s.beginPayment(ctx, bookingID)
	if !ok {
		return nil, fmt.Errorf("pay booking %s: %w", bookingID, entity.ErrPaymentInProgress)
	}
	defer release()

	// authorization cannot be abandoned once started
	ctx = context.WithoutCancel(ctx)
	_ = wait(ctx, s.config.PaymentDelay)

	updated, err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	digits := utils.NormalizeCardNumber(req.CardNumber)
	s.log.Info("Payment accepted",
		zap.String("booking_id", bookingID),
		zap.String("card_last4", digits[len(digits)-4:]),
		zap.Int64("amount", GrandTotal(updated.TotalPrice)),
	)

	resp := bookingToResponse(updated)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.BookingResponse, error) {
	if req == nil || !req.Confirm {
		return nil, entity.ErrConfirmationRequired
	}

	cancelled, err := s.repo.Booking.Cancel(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))

	resp := bookingToResponse(cancelled)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := bookingToResponse(booking)
	return &resp, nil
}

// GetConfirmation only renders bookings whose payment went through.
func (s *bookingService) GetConfirmation(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, entity.ErrBookingNotConfirmed)
	}

	resp := bookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	responses := make([]response.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookingToResponse(&bookings[i]))
	}

	return responses, nil
}

func (s *bookingService) CurrentBooking(ctx context.Context) (*response.BookingResponse, error) {
	profileID := utils.GetProfileIDFromContext(ctx)

	s.mu.Lock()
	bookingID, ok := s.current[profileID]
	s.mu.Unlock()

	if !ok {
		return nil, entity.ErrBookingNotFound
	}

	return s.GetBooking(ctx, bookingID)
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrBookingNotFound)
	}
	return booking, nil
}

func (s *bookingService) setCurrent(ctx context.Context, bookingID string) {
	profileID := utils.GetProfileIDFromContext(ctx)

	s.mu.Lock()
	s.current[profileID] = bookingID
	s.mu.Unlock()
}

// beginPayment marks the booking as being authorized. The first submission
// wins; ok is false while another one is in flight.
func (s *bookingService) beginPayment(ctx context.Context, bookingID string) (release func(), ok bool) {
	key := utils.GetProfileIDFromContext(ctx) + "/" + bookingID

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.payments[key]; busy {
		return nil, false
	}
	s.payments[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.payments, key)
		s.mu.Unlock()
	}, true
}

// prefillGuest copies contact details of the signed-in user into empty fields.
func prefillGuest(details *request.GuestDetailsRequest, user *entity.UserSession) {
	if details.FirstName == "" {
		details.FirstName = user.FirstName
	}
	if details.LastName == "" {
		details.LastName = user.LastName
	}
	if details.Email == "" {
		details.Email = user.Email
	}
	if details.Phone == "" {
		details.Phone = user.Phone
	}
}

func bookingToResponse(booking *entity.Booking) response.BookingResponse {
	return response.BookingResponse{
		ID:           booking.ID,
		HotelID:      booking.HotelID,
		HotelName:    booking.HotelName,
		RoomID:       booking.RoomID,
		RoomName:     booking.RoomName,
		CheckIn:      booking.CheckIn.Format(utils.DateLayout),
		CheckOut:     booking.CheckOut.Format(utils.DateLayout),
		Guests:       booking.Guests,
		Nights:       booking.Nights,
		Price:        booking.Price,
		Discount:     booking.Discount,
		NightlyPrice: DiscountedNightly(booking.Price, booking.Discount),
		TotalPrice:   booking.TotalPrice,
		Tax:          Tax(booking.TotalPrice),
		GrandTotal:   GrandTotal(booking.TotalPrice),
		GuestDetails: response.GuestDetailsToResponse(booking.GuestDetails),
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
	}
}
