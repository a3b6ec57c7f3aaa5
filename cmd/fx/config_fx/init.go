package config_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"itinera/internal/config"
	"itinera/pkg/logger"
	"itinera/pkg/metrics"
)

var Module = fx.Options(
	fx.Provide(
		provideConfig,
		provideRegistry,
		providePlannerMetrics),
	fx.Invoke(setupLogger))

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func setupLogger(cfg *config.Config) {
	logger.Setup(cfg.AppEnv, cfg.LogLevel)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

func providePlannerMetrics(reg *prometheus.Registry) (*metrics.PlannerMetrics, error) {
	return metrics.NewPlannerMetrics(reg)
}
