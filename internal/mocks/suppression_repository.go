package mocks

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type SuppressionRepository struct {
	mock.Mock
}

func (m *SuppressionRepository) Exists(recipient string) (bool, error) {
	args := m.Called(recipient)
	return args.Bool(0), args.Error(1)
}

func (m *SuppressionRepository) Create(ctx context.Context, suppression *model.Suppression) error {
	args := m.Called(ctx, suppression)
	return args.Error(0)
}
