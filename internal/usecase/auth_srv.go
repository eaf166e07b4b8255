package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
	DemoUserID   = "demo-user"

	minPasswordLength = 6
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	session, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Info("Login rejected", zap.String("email", req.Email))
		return nil, err
	}

	if err := s.repo.Session.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("login %s: %w", req.Email, err)
	}

	s.log.Info("User logged in", zap.String("user_id", session.ID))

	resp := response.UserToResponse(session)
	return &resp, nil
}

// authenticate checks the demo account first, then signup records. Any
// other address is accepted with a password of minimum length.
func (s *authService) authenticate(ctx context.Context, email, password string) (*entity.UserSession, error) {
	if strings.EqualFold(email, DemoEmail) {
		if password != DemoPassword {
			return nil, entity.ErrInvalidCredentials
		}
		return &entity.UserSession{
			ID:        DemoUserID,
			FirstName: "Demo",
			LastName:  "User",
			Email:     DemoEmail,
		}, nil
	}

	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", email, err)
	}

	if account != nil {
		if !utils.CheckPassword(account.PasswordHash, password) {
			return nil, entity.ErrInvalidCredentials
		}
		return &entity.UserSession{
			ID:        account.UserID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			Phone:     account.Phone,
		}, nil
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, entity.ErrInvalidCredentials
	}

	return &entity.UserSession{
		ID:        utils.GenerateUserID(),
		FirstName: nameFromEmail(email),
		Email:     email,
	}, nil
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	if strings.EqualFold(req.Email, DemoEmail) {
		return nil, fmt.Errorf("signup %s: %w", req.Email, entity.ErrEmailTaken)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &entity.Account{
		UserID:       utils.GenerateUserID(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		if !errors.Is(err, entity.ErrEmailTaken) {
			s.log.Error("Failed to create account", zap.Error(err), zap.String("email", req.Email))
		}
		return nil, fmt.Errorf("signup %s: %w", req.Email, err)
	}

	session := &entity.UserSession{
		ID:        account.UserID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Phone:     account.Phone,
	}
	if err := s.repo.Session.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("signup %s: %w", req.Email, err)
	}

	s.log.Info("User signed up", zap.String("user_id", session.ID))

	resp := response.UserToResponse(session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.repo.Session.Delete(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *authService) Current(ctx context.Context) (*response.UserResponse, error) {
	session, err := s.repo.Session.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, entity.ErrNotAuthenticated
	}

	resp := response.UserToResponse(session)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	session, err := s.repo.Session.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, entity.ErrNotAuthenticated
	}

	if req.FirstName != nil {
		session.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		session.LastName = *req.LastName
	}
	if req.Email != nil {
		session.Email = *req.Email
	}
	if req.Phone != nil {
		session.Phone = *req.Phone
	}

	if err := s.repo.Session.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("update profile %s: %w", session.ID, err)
	}

	resp := response.UserToResponse(session)
	return &resp, nil
}

// nameFromEmail derives a display name from the local part of an address.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return local
	}
	first, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(first)) + local[size:]
}
