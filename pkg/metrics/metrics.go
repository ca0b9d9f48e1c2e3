// Package metrics provides Prometheus instrumentation for ostream components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for ostream components.
type Registry struct {
	// Device Metrics
	DeviceWrites       *prometheus.CounterVec
	DeviceBytesWritten *prometheus.CounterVec
	DeviceWriteErrors  *prometheus.CounterVec
	DeviceBytesDropped *prometheus.CounterVec
	DeviceFlushes      *prometheus.CounterVec
	DeviceFlushErrors  *prometheus.CounterVec

	// Flusher Metrics
	FlusherRuns    *prometheus.CounterVec
	FlusherStreams *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by ostream components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Device Metrics
		DeviceWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "device",
				Name:      "writes_total",
				Help:      "Total number of device write calls",
			},
			[]string{"device_name"},
		),

		DeviceBytesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "device",
				Name:      "bytes_written_total",
				Help:      "Total bytes accepted by the device",
			},
			[]string{"device_name"},
		),

		DeviceWriteErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "device",
				Name:      "write_errors_total",
				Help:      "Total number of device write calls that failed",
			},
			[]string{"device_name"},
		),

		DeviceBytesDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "device",
				Name:      "bytes_dropped_total",
				Help:      "Total bytes lost to failed device writes",
			},
			[]string{"device_name"},
		),

		DeviceFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "device",
				Name:      "flushes_total",
				Help:      "Total number of device flush calls",
			},
			[]string{"device_name"},
		),

		DeviceFlushErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "device",
				Name:      "flush_errors_total",
				Help:      "Total number of device flush calls that failed",
			},
			[]string{"device_name"},
		),

		// Flusher Metrics
		FlusherRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ostream",
				Subsystem: "flusher",
				Name:      "runs_total",
				Help:      "Total number of flush passes executed",
			},
			[]string{"flusher_name"},
		),

		FlusherStreams: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ostream",
				Subsystem: "flusher",
				Name:      "registered_streams",
				Help:      "Number of streams currently registered",
			},
			[]string{"flusher_name"},
		),
	}
}
