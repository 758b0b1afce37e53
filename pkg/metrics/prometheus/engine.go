package prometheus

import (
	"time"

	"github.com/marmos91/vfsemu/pkg/metrics"
	"github.com/marmos91/vfsemu/pkg/vfs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// engineMetrics is the Prometheus implementation of metrics.EngineMetrics.
type engineMetrics struct {
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	items           prometheus.Gauge
	linesTotal      prometheus.Counter
}

// NewEngineMetrics creates a new Prometheus-backed EngineMetrics instance
// registered with the global registry.
//
// Returns a no-op implementation if metrics are not enabled (InitRegistry not called).
func NewEngineMetrics() metrics.EngineMetrics {
	if !metrics.IsEnabled() {
		return metrics.NewNoopEngineMetrics()
	}
	return NewEngineMetricsWith(metrics.GetRegistry())
}

// NewEngineMetricsWith creates an EngineMetrics registered with reg.
func NewEngineMetricsWith(reg prometheus.Registerer) metrics.EngineMetrics {
	return &engineMetrics{
		commandsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vfsemu_commands_total",
				Help: "Total number of executed commands by command, status, and error code",
			},
			[]string{"command", "status", "error_code"},
		),
		commandDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "vfsemu_command_duration_seconds",
				Help: "Duration of command execution in seconds",
				Buckets: []float64{
					0.00001, // 10µs
					0.0001,  // 100µs
					0.001,   // 1ms
					0.01,    // 10ms
					0.1,     // 100ms
				},
			},
			[]string{"command"},
		),
		items: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "vfsemu_tree_items",
				Help: "Number of live items in the emulated tree, drive included",
			},
		),
		linesTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "vfsemu_lines_processed_total",
				Help: "Total number of command lines processed",
			},
		),
	}
}

func (m *engineMetrics) RecordCommand(command string, duration time.Duration, err error) {
	status := "success"
	errorCode := ""
	if err != nil {
		status = "error"
		errorCode = "unknown"
		if code, ok := vfs.CodeOf(err); ok {
			errorCode = code.String()
		}
	}

	m.commandsTotal.WithLabelValues(command, status, errorCode).Inc()
	m.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

func (m *engineMetrics) SetItemCount(count int) {
	m.items.Set(float64(count))
}

func (m *engineMetrics) RecordLines(count int) {
	m.linesTotal.Add(float64(count))
}
