package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("hotel h9: %w", entity.ErrHotelNotFound), http.StatusNotFound},
		{fmt.Errorf("room r9: %w", entity.ErrRoomNotFound), http.StatusNotFound},
		{fmt.Errorf("booking b9: %w", entity.ErrBookingNotFound), http.StatusNotFound},
		{entity.ErrNotAuthenticated, http.StatusUnauthorized},
		{entity.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("pay: %w", entity.ErrInvalidTransition), http.StatusConflict},
		{entity.ErrBookingNotConfirmed, http.StatusConflict},
		{entity.ErrConfirmationRequired, http.StatusConflict},
		{entity.ErrPaymentInProgress, http.StatusConflict},
		{entity.ErrEmailTaken, http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "test")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandleServiceError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("create booking: %w", utils.NewValidationError(map[string]string{"email": "Invalid email format"}))

	handleServiceError(zap.NewNop(), rec, err, "create booking")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status bool              `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Invalid email format", body.Errors["email"])
}

func TestHandleServiceError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(zap.NewNop(), rec, errors.New("dial tcp 10.0.0.5:5432: refused"), "list bookings")

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
