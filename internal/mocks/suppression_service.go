package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/stretchr/testify/mock"
)

type SuppressionService struct {
	mock.Mock
}

func (m *SuppressionService) IsSuppressed(ctx context.Context, recipient string) (bool, error) {
	args := m.Called(ctx, recipient)
	return args.Bool(0), args.Error(1)
}

func (m *SuppressionService) Suppress(ctx context.Context, cmd service.SuppressCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
