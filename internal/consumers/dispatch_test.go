package consumers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Behyna/sms-services/dispatcher/internal/constants"
	"github.com/Behyna/sms-services/dispatcher/internal/consumers"
	"github.com/Behyna/sms-services/dispatcher/internal/mocks"
	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/Behyna/sms-services/dispatcher/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// captureConsumer hands the queued body straight to the handler and keeps the
// handler's verdict so tests can assert on the ack/requeue decision.
type captureConsumer struct {
	body       []byte
	handlerErr error
}

func (c *captureConsumer) Consume(ctx context.Context, prefetch int, queue string, handler mq.Handle) error {
	c.handlerErr = handler(ctx, c.body)
	return nil
}

func TestDispatchConsumer_Consume(t *testing.T) {
	logger := zap.NewNop()

	validBody := []byte(`{"template_key":"appointment_reminder","language":"pl",` +
		`"recipient":"+48601234567","data":{"time":"14:30"},"metadata":{"appointment_id":7}}`)

	t.Run("acks successfully dispatched command", func(t *testing.T) {
		mockService := &mocks.DispatchService{}
		capture := &captureConsumer{body: validBody}
		consumer := consumers.NewDispatchConsumer(mockService, capture, logger)

		record := &model.SendRecord{ID: 1, Status: model.SendStatusSent}
		mockService.On("Dispatch", mock.Anything, mock.AnythingOfType("service.DispatchCommand")).
			Return(record, nil)

		err := consumer.Consume(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, capture.handlerErr)
		mockService.AssertExpectations(t)
	})

	t.Run("requeues on database error", func(t *testing.T) {
		mockService := &mocks.DispatchService{}
		capture := &captureConsumer{body: validBody}
		consumer := consumers.NewDispatchConsumer(mockService, capture, logger)

		mockService.On("Dispatch", mock.Anything, mock.AnythingOfType("service.DispatchCommand")).
			Return(nil, service.NewServiceError(constants.ErrCodeInternalError, service.ErrDatabase))

		err := consumer.Consume(context.Background())

		assert.NoError(t, err)
		var temp mq.TempError
		assert.ErrorAs(t, capture.handlerErr, &temp)
		assert.True(t, temp.Temporary())
	})

	t.Run("requeues while sending is disabled", func(t *testing.T) {
		mockService := &mocks.DispatchService{}
		capture := &captureConsumer{body: validBody}
		consumer := consumers.NewDispatchConsumer(mockService, capture, logger)

		mockService.On("Dispatch", mock.Anything, mock.AnythingOfType("service.DispatchCommand")).
			Return(nil, service.NewServiceError(constants.ErrCodeSendingDisabled, service.ErrSendingDisabled))

		err := consumer.Consume(context.Background())

		assert.NoError(t, err)
		var temp mq.TempError
		assert.ErrorAs(t, capture.handlerErr, &temp)
	})

	t.Run("acks delivery failure instead of requeueing", func(t *testing.T) {
		mockService := &mocks.DispatchService{}
		capture := &captureConsumer{body: validBody}
		consumer := consumers.NewDispatchConsumer(mockService, capture, logger)

		mockService.On("Dispatch", mock.Anything, mock.AnythingOfType("service.DispatchCommand")).
			Return(nil, service.NewServiceError(constants.ErrCodeDeliveryError, errors.New("provider down")))

		err := consumer.Consume(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, capture.handlerErr)
	})

	t.Run("drops malformed payload", func(t *testing.T) {
		mockService := &mocks.DispatchService{}
		capture := &captureConsumer{body: []byte("not json")}
		consumer := consumers.NewDispatchConsumer(mockService, capture, logger)

		err := consumer.Consume(context.Background())

		assert.NoError(t, err)
		assert.Error(t, capture.handlerErr)
		var temp mq.TempError
		assert.False(t, errors.As(capture.handlerErr, &temp))
		mockService.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})
}
