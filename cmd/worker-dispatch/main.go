package main

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/config"
	"github.com/Behyna/sms-services/dispatcher/internal/consumers"
	"github.com/Behyna/sms-services/dispatcher/internal/metrics"
	"github.com/Behyna/sms-services/dispatcher/internal/repository"
	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/Behyna/sms-services/dispatcher/pkg/httpclient"
	"github.com/Behyna/sms-services/dispatcher/pkg/mq"
	"github.com/Behyna/sms-services/dispatcher/pkg/mysql"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewConnectionDB,
			NewMQConnection,
			NewMQConsumer,
			metrics.NewMetrics,

			repository.NewSendRecordRepository,
			repository.NewEventRepository,
			repository.NewTemplateRepository,
			repository.NewSuppressionRepository,
			repository.NewTransactionManager,
			NewGateway,
			service.NewSuppressionService,
			service.NewDispatchService,

			consumers.NewDispatchConsumer,
		),
		fx.Invoke(runDispatchConsumer),
	).Run()
}

func runDispatchConsumer(dispatchConsumer consumers.DispatchConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{"notify.dispatch"}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", "notify.dispatch"))

			go func() {
				if err := dispatchConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("dispatch consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping dispatch consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewGateway(cfg *config.Config) smsgateway.Gateway {
	client := httpclient.NewHTTPClient(cfg.Gateway.Timeout)
	return smsgateway.NewHTTPGateway(cfg.Gateway, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
