package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/stretchr/testify/mock"
)

type DispatchPublisher struct {
	mock.Mock
}

func (m *DispatchPublisher) PublishDispatch(ctx context.Context, cmd service.DispatchCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
