package config

import (
	"github.com/marmos91/vfsemu/pkg/metrics"
	promMetrics "github.com/marmos91/vfsemu/pkg/metrics/prometheus"
)

// MetricsResult contains all metrics-related components created from configuration.
type MetricsResult struct {
	// EngineMetrics is the collector for the command engine (never nil, uses noop if disabled)
	EngineMetrics metrics.EngineMetrics

	// Textfile is where the registry is written after a run ("" if disabled)
	Textfile string
}

// InitializeMetrics creates the metrics components described by cfg.
//
// If metrics are enabled, the global Prometheus registry is initialized and
// a Prometheus-backed EngineMetrics is returned. Otherwise the no-op
// implementation is returned.
func InitializeMetrics(cfg *Config) *MetricsResult {
	if !cfg.Metrics.Enabled {
		return &MetricsResult{
			EngineMetrics: metrics.NewNoopEngineMetrics(),
		}
	}

	metrics.InitRegistry()

	return &MetricsResult{
		EngineMetrics: promMetrics.NewEngineMetrics(),
		Textfile:      cfg.Metrics.Textfile,
	}
}

// Flush writes the collected metrics to the configured textfile.
// It does nothing when metrics are disabled.
func (r *MetricsResult) Flush() error {
	if r.Textfile == "" {
		return nil
	}
	return metrics.WriteTextfile(r.Textfile)
}
