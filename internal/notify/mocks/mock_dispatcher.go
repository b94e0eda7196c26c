package mocks

import (
	"context"

	"appealsapi/internal/notify"
	"github.com/stretchr/testify/mock"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Notify(ctx context.Context, n notify.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockDispatcher) Close() error {
	args := m.Called()
	return args.Error(0)
}
