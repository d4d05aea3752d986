package publishers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/Behyna/sms-services/dispatcher/pkg/mq"
	"go.uber.org/zap"
)

const dispatchQueue = "notify.dispatch"

type DispatchPublisher interface {
	PublishDispatch(ctx context.Context, cmd service.DispatchCommand) error
}

type dispatchPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewDispatchPublisher(publisher mq.Publisher, logger *zap.Logger) DispatchPublisher {
	return &dispatchPublisher{publisher: publisher, logger: logger}
}

func (p *dispatchPublisher) PublishDispatch(ctx context.Context, cmd service.DispatchCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, "", dispatchQueue, body); err != nil {
		p.logger.Error("Failed to publish dispatch command",
			zap.Error(err),
			zap.String("templateKey", cmd.TemplateKey),
			zap.String("recipient", cmd.Recipient))
		return err
	}

	p.logger.Info("Dispatch command queued",
		zap.String("templateKey", cmd.TemplateKey),
		zap.String("recipient", cmd.Recipient))

	return nil
}
