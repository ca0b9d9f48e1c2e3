package stream

import (
	"github.com/vnykmshr/ostream/pkg/common/validation"
	"github.com/vnykmshr/ostream/pkg/device"
)

// DefaultCapacity is the staging-buffer size used by NewBuffered.
const DefaultCapacity = 1024

// Config holds configuration options for a buffered stream.
type Config struct {
	// Capacity is the staging-buffer size in bytes.
	// Default: 1024
	Capacity int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity}
}

// NewBuffered creates a buffered stream over dev with the default capacity.
// Small writes are coalesced in a staging buffer; writes larger than the
// capacity bypass it entirely.
//
// Nothing flushes automatically at teardown: bytes still staged when the
// stream is dropped are lost. Callers end output with Flush or Endl, or
// attach a flusher.
func NewBuffered(dev device.Device) *Stream {
	st, _ := NewBufferedWithConfig(dev, DefaultConfig())
	return st
}

// NewBufferedWithConfig creates a buffered stream with the given
// configuration.
func NewBufferedWithConfig(dev device.Device, config Config) (*Stream, error) {
	if err := validation.ValidateNotNil("stream", "device", dev); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositive("stream", "capacity", config.Capacity); err != nil {
		return nil, err
	}

	return &Stream{
		s:    &fixedBuffer{dev: dev, buf: make([]byte, config.Capacity)},
		wide: utf16Native(dev),
	}, nil
}

// BufferedFromStdout creates a buffered stream bound to standard output.
func BufferedFromStdout() *Stream {
	return NewBuffered(device.FromStdout())
}

// BufferedFromStderr creates a buffered stream bound to standard error.
func BufferedFromStderr() *Stream {
	return NewBuffered(device.FromStderr())
}

// fixedBuffer coalesces writes in a fixed-capacity staging buffer.
// Invariant: bytes [0,cur) are staged, unflushed output; [cur,cap) is
// garbage. The buffer never grows.
type fixedBuffer struct {
	dev device.Device
	buf []byte
	cur int
}

func (f *fixedBuffer) write(p []byte) {
	switch {
	case len(p) == 0:
		// Disallow empty writes entirely.
	case len(p) > len(f.buf):
		// Oversized: drain whatever was staged, then bypass the buffer.
		// Never partially stage a write larger than the capacity.
		f.drain()
		_, _ = f.dev.Write(p)
	case len(p) > len(f.buf)-f.cur:
		f.drain()
		f.stage(p)
	default:
		f.stage(p)
	}
}

func (f *fixedBuffer) flush() {
	f.drain()
	// Sync unconditionally so an explicit flush reaches the device even
	// when nothing was staged.
	_ = f.dev.Flush()
}

// drain writes the staged bytes to the device and resets the cursor.
func (f *fixedBuffer) drain() {
	if f.cur == 0 {
		return
	}
	_, _ = f.dev.Write(f.buf[:f.cur])
	f.cur = 0
}

// stage copies p into the buffer at the cursor. Callers must have made
// room; overrunning the buffer is an internal bug, not an I/O condition.
func (f *fixedBuffer) stage(p []byte) {
	if len(p) > len(f.buf)-f.cur {
		panic("stream: staging buffer overrun")
	}
	f.cur += copy(f.buf[f.cur:], p)
}

func (f *fixedBuffer) pending() int { return f.cur }

func (f *fixedBuffer) capacity() int { return len(f.buf) }
