package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cpu-scheduler/config"
)

// NewApp wires the scheduling routes. A nil registry disables /metrics.
func NewApp(cfg *config.SchedulerConfig, registry *prometheus.Registry, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	var metrics *Metrics
	if registry != nil {
		metrics = NewMetrics(registry)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	handler := NewSchedulerHandlerImpl(cfg, metrics, logger)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}

	// paths of the original flask service
	app.Post("/fcfs", handler.FirstComeFirstServe)
	app.Post("/sjf_non_preemptive", handler.ShortestJobFirst)
	app.Post("/preemptive_sjf", handler.ShortestRemainingTimeFirst)
	app.Post("/round_robin", handler.RoundRobin)
	app.Post("/priority_scheduling", handler.Priority)

	return app
}
