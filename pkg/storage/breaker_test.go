package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct {
	calls int
	err   error
}

func (s *failingStore) Get(context.Context, string) ([]byte, error) {
	s.calls++
	return nil, s.err
}

func (s *failingStore) Set(context.Context, string, []byte) error {
	s.calls++
	return s.err
}

func (s *failingStore) Delete(context.Context, string) error {
	s.calls++
	return s.err
}

func TestBreakerStore_PassesThrough(t *testing.T) {
	exerciseStore(t, NewBreakerStore("test", NewMemoryStore(), zap.NewNop()))
}

func TestBreakerStore_OpensAfterFailures(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{err: errors.New("connection refused")}
	store := NewBreakerStore("test", backend, zap.NewNop())

	for i := 0; i < 5; i++ {
		err := store.Set(ctx, "k", []byte("v"))
		assert.EqualError(t, err, "connection refused")
	}
	require.Equal(t, 5, backend.calls)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, backend.calls)
}

func TestBreakerStore_MissesDoNotTrip(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{err: ErrNotFound}
	store := NewBreakerStore("test", backend, zap.NewNop())

	for i := 0; i < 10; i++ {
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, 10, backend.calls)
}
