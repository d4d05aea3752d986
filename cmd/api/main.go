package main

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/api"
	v1 "github.com/Behyna/sms-services/dispatcher/internal/api/v1"
	apivalidator "github.com/Behyna/sms-services/dispatcher/internal/api/validator"
	"github.com/Behyna/sms-services/dispatcher/internal/config"
	middleware "github.com/Behyna/sms-services/dispatcher/internal/error"
	"github.com/Behyna/sms-services/dispatcher/internal/metrics"
	"github.com/Behyna/sms-services/dispatcher/internal/publishers"
	"github.com/Behyna/sms-services/dispatcher/internal/repository"
	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/Behyna/sms-services/dispatcher/pkg/httpclient"
	"github.com/Behyna/sms-services/dispatcher/pkg/mq"
	"github.com/Behyna/sms-services/dispatcher/pkg/mysql"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/gofiber/fiber/v2"
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
			NewMQPublisher,
			apivalidator.New,
			NewFiberApp,
			metrics.NewMetrics,

			repository.NewSendRecordRepository,
			repository.NewEventRepository,
			repository.NewTemplateRepository,
			repository.NewSuppressionRepository,
			repository.NewTransactionManager,
			NewGateway,
			service.NewSuppressionService,
			service.NewDispatchService,

			publishers.NewDispatchPublisher,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, cfg *config.Config,
	rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle,
) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{"notify.dispatch"}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server exited", zap.Error(err))
				}
			}()

			logger.Info("api server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func NewFiberApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger)})
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

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
