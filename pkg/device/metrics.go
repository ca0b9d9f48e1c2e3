package device

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/ostream/pkg/metrics"
)

// MetricsDevice wraps a Device with Prometheus metrics collection. Streams
// above it keep their swallow-all-failures policy; the wrapper records the
// outcomes they discard, including bytes lost to failed writes.
type MetricsDevice struct {
	dev      Device
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps dev with metrics collection under the given name.
func NewWithMetrics(dev Device, name string) *MetricsDevice {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithMetricsConfig(dev, name, config)
}

// NewWithMetricsConfig wraps dev with metrics collection using a custom
// metrics configuration.
func NewWithMetricsConfig(dev Device, name string, metricsConfig metrics.Config) *MetricsDevice {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsDevice{
		dev:      dev,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
}

// Write delivers p to the wrapped device, counting the call, the bytes, and
// any failure.
func (md *MetricsDevice) Write(p []byte) (int, error) {
	n, err := md.dev.Write(p)

	if md.enabled {
		md.registry.DeviceWrites.WithLabelValues(md.name).Inc()
		md.registry.DeviceBytesWritten.WithLabelValues(md.name).Add(float64(n))
		if err != nil {
			md.registry.DeviceWriteErrors.WithLabelValues(md.name).Inc()
			md.registry.DeviceBytesDropped.WithLabelValues(md.name).Add(float64(len(p) - n))
		}
	}

	return n, err
}

// Flush flushes the wrapped device, counting the call and any failure.
func (md *MetricsDevice) Flush() error {
	err := md.dev.Flush()

	if md.enabled {
		md.registry.DeviceFlushes.WithLabelValues(md.name).Inc()
		if err != nil {
			md.registry.DeviceFlushErrors.WithLabelValues(md.name).Inc()
		}
	}

	return err
}

// UTF16Console forwards the wideness capability of the wrapped device.
func (md *MetricsDevice) UTF16Console() bool {
	if wc, ok := md.dev.(WideConsole); ok {
		return wc.UTF16Console()
	}
	return false
}

// EnableMetrics enables metrics collection.
func (md *MetricsDevice) EnableMetrics(config metrics.Config) error {
	md.enabled = config.Enabled

	if config.Registry != nil {
		md.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (md *MetricsDevice) DisableMetrics() {
	md.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (md *MetricsDevice) MetricsEnabled() bool {
	return md.enabled
}
