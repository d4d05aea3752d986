package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type SendRecordRepository struct {
	mock.Mock
}

func (m *SendRecordRepository) Create(ctx context.Context, record *model.SendRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *SendRecordRepository) GetByID(id int64) (*model.SendRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SendRecord), args.Error(1)
}

func (m *SendRecordRepository) GetByIdempotencyKey(key string) (*model.SendRecord, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SendRecord), args.Error(1)
}

func (m *SendRecordRepository) GetByRecipient(recipient string, limit, offset int) ([]model.SendRecord, error) {
	args := m.Called(recipient, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SendRecord), args.Error(1)
}

func (m *SendRecordRepository) UpdateFromPending(ctx context.Context, record *model.SendRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
