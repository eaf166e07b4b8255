package usecase

import (
	"context"
	"testing"
	"unicode/utf8"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("demo account", func(t *testing.T) {
		user, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: DemoEmail, Password: DemoPassword})
		require.NoError(t, err)
		assert.Equal(t, DemoUserID, user.ID)
		assert.Equal(t, "Demo", user.FirstName)
		assert.Equal(t, "User", user.LastName)

		current, err := svc.Auth.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, DemoUserID, current.ID)
	})

	t.Run("demo account wrong password", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: DemoEmail, Password: "secret123"})
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("unknown email with long enough password", func(t *testing.T) {
		user, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "jane@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.FirstName)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("non ascii email", func(t *testing.T) {
		user, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "élan@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "Élan", user.FirstName)

		current, err := svc.Auth.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Élan", current.FirstName)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "jane@example.com", Password: "abc"})
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "not-an-email", Password: "secret"})
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid email format", verr.Fields["email"])
	})
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := profileCtx("alice")

	signup := &request.SignupRequest{
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@example.com",
		Phone:           "555-0101",
		Password:        "wonderland",
		ConfirmPassword: "wonderland",
	}

	user, err := svc.Auth.Signup(ctx, signup)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "555-0101", user.Phone)

	_, err = svc.Auth.Signup(ctx, signup)
	assert.ErrorIs(t, err, entity.ErrEmailTaken)

	require.NoError(t, svc.Auth.Logout(ctx))
	_, err = svc.Auth.Current(ctx)
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	_, err = svc.Auth.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	again, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "wonderland"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Smith", again.LastName)
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Auth.Signup(context.Background(), &request.SignupRequest{
		FirstName:       "Alice",
		Email:           "alice@example.com",
		Phone:           "555-0101",
		Password:        "wonderland",
		ConfirmPassword: "looking-glass",
	})

	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "This field is required", verr.Fields["last_name"])
	assert.Equal(t, "Values do not match", verr.Fields["confirm_password"])

	_, err = svc.Auth.Current(context.Background())
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Auth.UpdateProfile(ctx, &request.UpdateProfileRequest{Phone: ptr("555-0199")})
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	_, err = svc.Auth.Login(ctx, &request.LoginRequest{Email: DemoEmail, Password: DemoPassword})
	require.NoError(t, err)

	user, err := svc.Auth.UpdateProfile(ctx, &request.UpdateProfileRequest{Phone: ptr("555-0199")})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", user.Phone)
	assert.Equal(t, "Demo", user.FirstName)

	current, err := svc.Auth.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", current.Phone)

	_, err = svc.Auth.UpdateProfile(ctx, &request.UpdateProfileRequest{Email: ptr("nope")})
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@example.com", "Jane"},
		{"élan@example.com", "Élan"},
		{"ölçü.test@example.com", "Ölçü.test"},
		{"@example.com", ""},
		{"x@example.com", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := nameFromEmail(tt.email)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
