package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/clock"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/storage"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

var testNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestService() (*Service, *repository.Repository) {
	repo := repository.NewRepository(storage.NewMemoryStore(), zap.NewNop())
	config := &utils.Config{}
	return NewService(repo, config, clock.NewFixed(testNow), zap.NewNop()), repo
}

func profileCtx(profileID string) context.Context {
	return utils.SetProfileContext(context.Background(), profileID)
}
