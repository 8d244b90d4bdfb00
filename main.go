package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/util"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := util.NewLogger(os.Stderr, cfg.LogLevel)

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	app := api.NewApp(cfg, registry, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("listening", "addr", addr, "metrics", cfg.MetricsEnabled)
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
