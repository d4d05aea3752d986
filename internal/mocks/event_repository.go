package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) ListBySendRecordID(sendRecordID int64) ([]model.Event, error) {
	args := m.Called(sendRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}
