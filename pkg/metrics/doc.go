// Package metrics provides Prometheus instrumentation for ostream components.
//
// Streams deliberately swallow every device outcome, so on their own they
// cannot tell you whether output actually reached the endpoint. This package
// restores that visibility at the device boundary without changing stream
// semantics: an instrumented device counts what the stream layer discards.
//
// # Overview
//
// The metrics package provides instrumentation for:
//   - Device traffic (write calls, bytes written, flushes)
//   - Device failures (write errors, flush errors, bytes dropped)
//   - Flusher activity (flush passes, registered streams)
//
// # Quick Start
//
// Wrap a device and build streams on top of it:
//
//	dev := device.NewWithMetrics(device.FromStdout(), "stdout")
//	s := stream.NewBuffered(dev)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	dev := device.NewWithMetricsConfig(device.FromStderr(), "stderr", config)
//
// # Available Metrics
//
// ## Device Metrics
//
//   - ostream_device_writes_total: Total number of device write calls
//   - ostream_device_bytes_written_total: Total bytes accepted by the device
//   - ostream_device_write_errors_total: Total failed device write calls
//   - ostream_device_bytes_dropped_total: Total bytes lost to failed writes
//   - ostream_device_flushes_total: Total number of device flush calls
//   - ostream_device_flush_errors_total: Total failed device flush calls
//
// ## Flusher Metrics
//
//   - ostream_flusher_runs_total: Total number of flush passes executed
//   - ostream_flusher_registered_streams: Number of streams currently registered
//
// All device metrics carry a device_name label; flusher metrics carry a
// flusher_name label.
package metrics
