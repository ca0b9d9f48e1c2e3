package testutil

import (
	"bytes"
	"sync"
)

// MockDevice is a test device that records every write call separately,
// counts flushes, and can simulate write and flush failures. The write-call
// boundaries matter: buffered-stream tests assert how many device writes a
// given operation produced, not just the final byte content.
type MockDevice struct {
	mu         sync.Mutex
	buf        *bytes.Buffer
	writes     [][]byte
	flushCount int
	writeErr   error
	flushErr   error
	wide       bool
}

// NewMockDevice creates a new MockDevice.
func NewMockDevice() *MockDevice {
	return &MockDevice{
		buf: &bytes.Buffer{},
	}
}

// Write implements the device contract, recording p as one write call.
func (md *MockDevice) Write(p []byte) (int, error) {
	md.mu.Lock()
	defer md.mu.Unlock()

	if md.writeErr != nil {
		return 0, md.writeErr
	}

	segment := make([]byte, len(p))
	copy(segment, p)
	md.writes = append(md.writes, segment)

	return md.buf.Write(p)
}

// Flush implements the device contract.
func (md *MockDevice) Flush() error {
	md.mu.Lock()
	defer md.mu.Unlock()

	md.flushCount++
	return md.flushErr
}

// UTF16Console reports whether the device pretends to be a UTF-16 console.
func (md *MockDevice) UTF16Console() bool {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.wide
}

// String returns the concatenation of all bytes received so far.
func (md *MockDevice) String() string {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.buf.String()
}

// Len returns the total number of bytes received.
func (md *MockDevice) Len() int {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.buf.Len()
}

// WriteCount returns the number of Write calls received.
func (md *MockDevice) WriteCount() int {
	md.mu.Lock()
	defer md.mu.Unlock()
	return len(md.writes)
}

// WriteAt returns the bytes of the i-th Write call.
func (md *MockDevice) WriteAt(i int) []byte {
	md.mu.Lock()
	defer md.mu.Unlock()

	segment := make([]byte, len(md.writes[i]))
	copy(segment, md.writes[i])
	return segment
}

// FlushCount returns the number of Flush calls received.
func (md *MockDevice) FlushCount() int {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.flushCount
}

// SetWriteError configures subsequent writes to fail with err.
func (md *MockDevice) SetWriteError(err error) {
	md.mu.Lock()
	defer md.mu.Unlock()
	md.writeErr = err
}

// SetFlushError configures subsequent flushes to fail with err.
func (md *MockDevice) SetFlushError(err error) {
	md.mu.Lock()
	defer md.mu.Unlock()
	md.flushErr = err
}

// SetUTF16Console makes the device report a UTF-16-native console.
func (md *MockDevice) SetUTF16Console(wide bool) {
	md.mu.Lock()
	defer md.mu.Unlock()
	md.wide = wide
}

// Reset clears recorded writes and counters.
func (md *MockDevice) Reset() {
	md.mu.Lock()
	defer md.mu.Unlock()
	md.buf.Reset()
	md.writes = nil
	md.flushCount = 0
	md.writeErr = nil
	md.flushErr = nil
	md.wide = false
}
