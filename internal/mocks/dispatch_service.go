package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/stretchr/testify/mock"
)

type DispatchService struct {
	mock.Mock
}

func (m *DispatchService) Dispatch(ctx context.Context, cmd service.DispatchCommand) (*model.SendRecord, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SendRecord), args.Error(1)
}

func (m *DispatchService) GetSendByKey(ctx context.Context, idempotencyKey string) (*model.SendRecord, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SendRecord), args.Error(1)
}

func (m *DispatchService) GetSends(ctx context.Context, query service.GetSendsQuery) ([]model.SendRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SendRecord), args.Error(1)
}
