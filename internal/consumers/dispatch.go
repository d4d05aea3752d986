package consumers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/Behyna/sms-services/dispatcher/pkg/mq"
	"go.uber.org/zap"
)

const dispatchQueue = "notify.dispatch"

type DispatchConsumer interface {
	Consume(ctx context.Context) error
}

type dispatchConsumer struct {
	service  service.DispatchService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewDispatchConsumer(service service.DispatchService, consumer mq.Consumer, logger *zap.Logger) DispatchConsumer {
	return &dispatchConsumer{
		service:  service,
		consumer: consumer,
		logger:   logger,
	}
}

func (c *dispatchConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx, 1, dispatchQueue, c.handleMessage)
}

// handleMessage applies the queue redelivery policy: infrastructure errors
// (database, sending temporarily disabled) requeue; everything else acks. A
// delivery failure already left a terminal record and a redelivered command
// would only re-read it through the duplicate check.
func (c *dispatchConsumer) handleMessage(ctx context.Context, body []byte) error {
	c.logger.Info("received dispatch command", zap.ByteString("body", body))

	var cmd service.DispatchCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		c.logger.Warn("invalid dispatch command", zap.Error(err))
		return err
	}

	record, err := c.service.Dispatch(ctx, cmd)
	if err == nil {
		c.logger.Info("dispatch command processed",
			zap.Int64("sendID", record.ID),
			zap.String("status", string(record.Status)))
		return nil
	}

	if errors.Is(err, service.ErrDatabase) || errors.Is(err, service.ErrSendingDisabled) {
		return mq.Temporary(err)
	}

	c.logger.Warn("dispatch command dropped",
		zap.Error(err),
		zap.String("templateKey", cmd.TemplateKey),
		zap.String("recipient", cmd.Recipient))

	return nil
}
