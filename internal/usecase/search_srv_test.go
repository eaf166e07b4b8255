package usecase

import (
	"testing"

	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService(t *testing.T) {
	svc, _ := newTestService()
	ctx := profileCtx("alice")

	t.Run("defaults", func(t *testing.T) {
		params := svc.Search.Get(ctx)
		assert.Equal(t, "", params.Location)
		assert.Nil(t, params.CheckIn)
		assert.Nil(t, params.CheckOut)
		assert.Equal(t, 2, params.Guests)
		assert.Equal(t, 1, params.Rooms)
	})

	t.Run("partial merge", func(t *testing.T) {
		_, err := svc.Search.Update(ctx, &request.UpdateSearchParamsRequest{Location: ptr("Miami")})
		require.NoError(t, err)

		params, err := svc.Search.Update(ctx, &request.UpdateSearchParamsRequest{
			CheckIn:  ptr("2024-06-01"),
			CheckOut: ptr("2024-06-04"),
			Guests:   ptr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, "Miami", params.Location)
		assert.Equal(t, "2024-06-01", *params.CheckIn)
		assert.Equal(t, "2024-06-04", *params.CheckOut)
		assert.Equal(t, 3, params.Guests)
		assert.Equal(t, 1, params.Rooms)
	})

	t.Run("invalid update is not stored", func(t *testing.T) {
		_, err := svc.Search.Update(ctx, &request.UpdateSearchParamsRequest{
			CheckOut: ptr("2024-05-30"),
			Rooms:    ptr(11),
		})
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "check_out")
		assert.Contains(t, verr.Fields, "rooms")

		params := svc.Search.Get(ctx)
		assert.Equal(t, "2024-06-04", *params.CheckOut)
		assert.Equal(t, 1, params.Rooms)
	})

	t.Run("guest bounds", func(t *testing.T) {
		for _, guests := range []int{0, 21} {
			_, err := svc.Search.Update(ctx, &request.UpdateSearchParamsRequest{Guests: ptr(guests)})
			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr, "guests %d", guests)
			assert.Contains(t, verr.Fields, "guests")
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.Search.Update(ctx, &request.UpdateSearchParamsRequest{CheckIn: ptr("06/01/2024")})
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "check_in")
	})

	t.Run("empty date clears it", func(t *testing.T) {
		params, err := svc.Search.Update(ctx, &request.UpdateSearchParamsRequest{CheckOut: ptr("")})
		require.NoError(t, err)
		assert.Nil(t, params.CheckOut)
		assert.NotNil(t, params.CheckIn)
	})

	t.Run("profiles are separate", func(t *testing.T) {
		assert.Equal(t, "", svc.Search.Get(profileCtx("bob")).Location)
	})

	t.Run("reset", func(t *testing.T) {
		params := svc.Search.Reset(ctx)
		assert.Equal(t, "", params.Location)
		assert.Equal(t, "", svc.Search.Get(ctx).Location)
	})
}
