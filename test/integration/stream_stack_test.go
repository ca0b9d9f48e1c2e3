// Package integration contains integration tests that verify cross-package
// functionality. These tests exercise full stacks — a stream over an
// instrumented device over a real sink — rather than single packages.
package integration

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vnykmshr/ostream/internal/testutil"
	"github.com/vnykmshr/ostream/pkg/device"
	"github.com/vnykmshr/ostream/pkg/flusher"
	"github.com/vnykmshr/ostream/pkg/metrics"
	"github.com/vnykmshr/ostream/pkg/stream"
)

// metricValue reads one labeled series out of a gatherable registry.
func metricValue(t *testing.T, reg *prometheus.Registry, family, deviceName string) float64 {
	t.Helper()

	families, err := reg.Gather()
	testutil.AssertNoError(t, err)

	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetValue() == deviceName {
					return seriesValue(m)
				}
			}
		}
	}

	t.Fatalf("metric %s{%s} not found", family, deviceName)
	return 0
}

func seriesValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	return m.GetGauge().GetValue()
}

// TestBufferedStreamOverInstrumentedDevice verifies the full stack: a
// buffered stream staging writes, a metrics wrapper counting device
// traffic, and the mock sink receiving coalesced output.
func TestBufferedStreamOverInstrumentedDevice(t *testing.T) {
	mock := testutil.NewMockDevice()
	reg := prometheus.NewRegistry()

	dev := device.NewWithMetricsConfig(mock, "sink", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	st := stream.NewBuffered(dev)

	for i := 0; i < 10; i++ {
		st.Str("line ").Int(int64(i)).Byte('\n')
	}
	st.Flush()

	// The buffer coalesced everything into one device write
	testutil.AssertEqual(t, mock.WriteCount(), 1)
	testutil.AssertEqual(t, mock.FlushCount(), 1)

	testutil.AssertEqual(t, metricValue(t, reg, "ostream_device_writes_total", "sink"), 1.0)
	testutil.AssertEqual(t, metricValue(t, reg, "ostream_device_flushes_total", "sink"), 1.0)
	testutil.AssertEqual(t, metricValue(t, reg, "ostream_device_bytes_written_total", "sink"), float64(mock.Len()))
}

// TestDroppedBytesAreObservable verifies the silent-failure contract end
// to end: the stream surfaces nothing when the device fails, but the
// instrumented wrapper records every byte lost.
func TestDroppedBytesAreObservable(t *testing.T) {
	mock := testutil.NewMockDevice()
	mock.SetWriteError(errors.New("disk full"))
	reg := prometheus.NewRegistry()

	dev := device.NewWithMetricsConfig(mock, "failing", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	st := stream.NewBuffered(dev)

	st.Str("twelve bytes")
	st.Flush()

	// The stream stays silent and the sink stays empty
	testutil.AssertEqual(t, st.Pending(), 0)
	testutil.AssertEqual(t, mock.Len(), 0)

	// but the loss is fully visible in the metrics
	testutil.AssertEqual(t, metricValue(t, reg, "ostream_device_write_errors_total", "failing"), 1.0)
	testutil.AssertEqual(t, metricValue(t, reg, "ostream_device_bytes_dropped_total", "failing"), 12.0)
}

// TestFlusherDrivesInstrumentedStreams verifies a flusher draining several
// buffered streams and reporting its runs through the same registry.
func TestFlusherDrivesInstrumentedStreams(t *testing.T) {
	const streams = 4
	reg := prometheus.NewRegistry()

	fl, err := flusher.NewWithConfig(flusher.Config{
		Name:     "integration",
		Interval: time.Hour, // runs come from FlushAll, not the clock
		Metrics:  metrics.Config{Enabled: true, Registry: reg},
	})
	testutil.AssertNoError(t, err)

	devs := make([]*testutil.MockDevice, streams)
	sts := make([]*stream.Stream, streams)
	for i := range devs {
		devs[i] = testutil.NewMockDevice()
		sts[i] = stream.NewBuffered(devs[i])
		testutil.AssertNoError(t, fl.Add(string(rune('a'+i)), sts[i]))
	}

	var wg sync.WaitGroup
	for i := 0; i < streams; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sts[i].Str("payload")
		}(i)
	}
	wg.Wait()

	fl.FlushAll()

	for i, dev := range devs {
		if dev.String() != "payload" {
			t.Errorf("stream %d: got %q, want %q", i, dev.String(), "payload")
		}
	}

	testutil.AssertEqual(t, metricValue(t, reg, "ostream_flusher_runs_total", "integration"), 1.0)
	testutil.AssertEqual(t, metricValue(t, reg, "ostream_flusher_registered_streams", "integration"), float64(streams))
}
