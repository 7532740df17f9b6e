package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"griya/mdp/internal/catalog"
)

// --- Mocks ---

// MockConfirmations implements catalog.Confirmations
type MockConfirmations struct {
	mock.Mock
}

func (m *MockConfirmations) Put(ctx context.Context, p catalog.Pending) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockConfirmations) Take(ctx context.Context, scope, token string) (catalog.Pending, error) {
	args := m.Called(ctx, scope, token)
	return args.Get(0).(catalog.Pending), args.Error(1)
}
