package mocks

import (
	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) FindActive(key, language string) (*model.Template, error) {
	args := m.Called(key, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}
