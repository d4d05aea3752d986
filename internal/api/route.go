package api

import (
	v1 "github.com/Behyna/sms-services/dispatcher/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/health", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Post("/v1/dispatch", handler.Dispatch)
	app.Post("/v1/dispatch/async", handler.DispatchAsync)
	app.Post("/v1/suppressions", handler.Suppress)
	app.Get("/v1/sends", handler.GetSends)
	app.Get("/v1/sends/:key", handler.GetSend)
}
