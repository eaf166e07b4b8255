package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/storage"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// AccountsKey is the persisted key of a profile's signup records.
const AccountsKey = "accounts"

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
}

type accountRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewAccountRepository(store storage.Store, log *zap.Logger) AccountRepository {
	return &accountRepository{
		store: store,
		log:   log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) load(ctx context.Context, profileID string) ([]entity.Account, error) {
	raw, err := r.store.Get(ctx, storage.ProfileKey(profileID, AccountsKey))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	var accounts []entity.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		r.log.Warn("Discarding corrupt accounts data",
			zap.Error(err),
			zap.String("profile_id", profileID),
		)
		return nil, nil
	}

	return accounts, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	profileID := utils.GetProfileIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx, profileID)
	if err != nil {
		r.log.Error("Failed to find account",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find account %s: %w", email, err)
	}

	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			a := a
			return &a, nil
		}
	}

	return nil, nil
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	profileID := utils.GetProfileIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx, profileID)
	if err != nil {
		return fmt.Errorf("create account %s: %w", account.Email, err)
	}

	for _, a := range accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return fmt.Errorf("create account %s: %w", account.Email, entity.ErrEmailTaken)
		}
	}

	raw, err := json.Marshal(append(accounts, *account))
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err := r.store.Set(ctx, storage.ProfileKey(profileID, AccountsKey), raw); err != nil {
		r.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("email", account.Email),
		)
		return fmt.Errorf("create account %s: %w", account.Email, err)
	}

	return nil
}
