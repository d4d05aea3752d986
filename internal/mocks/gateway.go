package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (m *Gateway) Send(ctx context.Context, to, message string, metadata map[string]any) (smsgateway.Result, error) {
	args := m.Called(ctx, to, message, metadata)
	return args.Get(0).(smsgateway.Result), args.Error(1)
}
