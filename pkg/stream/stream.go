package stream

import (
	"github.com/vnykmshr/ostream/pkg/device"
)

// Marker is a sentinel value recognized by Append.
type Marker uint8

const (
	// Flush flushes the stream without emitting any text.
	Flush Marker = iota

	// Endl emits one newline byte and then flushes the stream.
	Endl
)

// sink is the strategy behind a Stream: passthrough, fixed staging buffer,
// or discard. Sinks never report outcomes; failure handling ends at the
// device boundary.
type sink interface {
	write(p []byte)
	flush()
	pending() int
	capacity() int
}

// Stream is a byte-oriented output stream with typed append operations.
// All operations chain and none can fail: device and conversion failures
// degrade to "nothing written". Output is best-effort diagnostic text, not
// durable data.
//
// A Stream is not safe for concurrent use. The design assumes one writer
// per instance; callers sharing a stream across goroutines must synchronize
// externally.
//
// The zero value is unusable; construct streams with New, NewBuffered,
// NewNull, or the std-handle factories.
type Stream struct {
	s    sink
	wide bool
}

// New creates an unbuffered stream over dev. Every write goes straight to
// the device.
func New(dev device.Device) *Stream {
	return &Stream{s: &passthrough{dev: dev}, wide: utf16Native(dev)}
}

// FromStdout creates an unbuffered stream bound to standard output.
func FromStdout() *Stream {
	return New(device.FromStdout())
}

// FromStderr creates an unbuffered stream bound to standard error.
func FromStderr() *Stream {
	return New(device.FromStderr())
}

// Write forwards p to the sink and returns the stream. The device outcome
// is deliberately not surfaced.
func (st *Stream) Write(p []byte) *Stream {
	st.s.write(p)
	return st
}

// Flush pushes any staged bytes to the device and asks the device to sync.
func (st *Stream) Flush() *Stream {
	st.s.flush()
	return st
}

// Pending returns the number of staged, not-yet-flushed bytes. Always zero
// for unbuffered and null streams.
func (st *Stream) Pending() int {
	return st.s.pending()
}

// Capacity returns the staging-buffer capacity. Always zero for unbuffered
// and null streams.
func (st *Stream) Capacity() int {
	return st.s.capacity()
}

// utf16Native reports whether dev consumes UTF-16 natively.
func utf16Native(dev device.Device) bool {
	wc, ok := dev.(device.WideConsole)
	return ok && wc.UTF16Console()
}

// passthrough forwards every write unchanged to the device.
type passthrough struct {
	dev device.Device
}

func (p *passthrough) write(b []byte) {
	_, _ = p.dev.Write(b)
}

func (p *passthrough) flush() {
	_ = p.dev.Flush()
}

func (p *passthrough) pending() int { return 0 }

func (p *passthrough) capacity() int { return 0 }
