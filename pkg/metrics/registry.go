// Package metrics provides Prometheus metrics collection for the emulator.
//
// All metrics are optional - if not initialized, components use no-op
// implementations that have zero overhead. A batch run has no long-lived
// process to scrape, so collected metrics are exported once at the end of the
// run in the node-exporter textfile format (see WriteTextfile).
//
// Usage:
//
//	// Initialize global registry (typically in main.go)
//	metrics.InitRegistry()
//
//	// Create metrics instances for components
//	engineMetrics := prometheus.NewEngineMetrics()
//
//	// Or use nil for no-op behavior
//	eng, err := engine.New(cfg, nil)
package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// registry is the global Prometheus registry for all emulator metrics
	// Protected by registryOnce for write-once, read-many pattern
	registry     *prometheus.Registry
	registryOnce sync.Once
)

// InitRegistry initializes the global Prometheus registry.
//
// It's safe to call multiple times - subsequent calls are ignored. If not
// called, GetRegistry() returns nil and all metrics constructors return no-op
// implementations.
func InitRegistry() {
	registryOnce.Do(func() {
		registry = prometheus.NewRegistry()
	})
}

// GetRegistry returns the global Prometheus registry, or nil when metrics
// are disabled.
func GetRegistry() *prometheus.Registry {
	return registry
}

// IsEnabled returns true if InitRegistry() has been called.
func IsEnabled() bool {
	return GetRegistry() != nil
}

// WriteTextfile writes every metric gathered from the global registry to
// path, atomically, in the Prometheus text exposition format.
func WriteTextfile(path string) error {
	if !IsEnabled() {
		return fmt.Errorf("metrics registry is not initialized")
	}
	return WriteRegistryTextfile(GetRegistry(), path)
}

// WriteRegistryTextfile is WriteTextfile for an explicit registry.
func WriteRegistryTextfile(reg *prometheus.Registry, path string) error {
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
