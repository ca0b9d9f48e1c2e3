package device

import (
	"io"
	"os"
	"runtime"
)

// Device is an opaque byte-oriented I/O endpoint: a console handle, a file,
// a pipe, or any writer. Streams never inspect the returned outcomes; they
// exist for instrumented wrappers and for callers that talk to a device
// directly.
type Device interface {
	// Write delivers p to the endpoint.
	Write(p []byte) (n int, err error)

	// Flush forces any endpoint-side buffering out to the OS object.
	Flush() error
}

// Flusher is the optional flush capability of an io.Writer, matching
// bufio.Writer and friends.
type Flusher interface {
	Flush() error
}

// WideConsole is an optional Device capability. A device returning true
// consumes UTF-16 natively, so wide appends must be transcoded to UTF-8
// before writing.
type WideConsole interface {
	UTF16Console() bool
}

// fileDevice adapts an *os.File. Std handles additionally report console
// wideness on Windows.
type fileDevice struct {
	f       *os.File
	console bool
}

// FromStdout returns a device bound to the process's standard output.
func FromStdout() Device {
	return &fileDevice{f: os.Stdout, console: true}
}

// FromStderr returns a device bound to the process's standard error.
func FromStderr() Device {
	return &fileDevice{f: os.Stderr, console: true}
}

// FromFile returns a device wrapping an arbitrary open file. The caller
// retains ownership of the handle and closes it.
func FromFile(f *os.File) Device {
	return &fileDevice{f: f}
}

// Write implements Device.
func (d *fileDevice) Write(p []byte) (int, error) {
	return d.f.Write(p)
}

// Flush implements Device by syncing the file handle.
func (d *fileDevice) Flush() error {
	return d.f.Sync()
}

// UTF16Console implements WideConsole. Only the Windows console consumes
// UTF-16; every POSIX descriptor is byte oriented.
func (d *fileDevice) UTF16Console() bool {
	return d.console && runtime.GOOS == "windows"
}

// writerDevice adapts an arbitrary io.Writer.
type writerDevice struct {
	w io.Writer
}

// FromWriter returns a device wrapping any io.Writer. Flush delegates to the
// writer when it implements Flusher and is a no-op otherwise.
func FromWriter(w io.Writer) Device {
	return &writerDevice{w: w}
}

// Write implements Device.
func (d *writerDevice) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

// Flush implements Device.
func (d *writerDevice) Flush() error {
	if f, ok := d.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// discardDevice accepts and forgets everything.
type discardDevice struct{}

// Discard returns a device that accepts all writes and reports success.
func Discard() Device {
	return discardDevice{}
}

// Write implements Device.
func (discardDevice) Write(p []byte) (int, error) {
	return len(p), nil
}

// Flush implements Device.
func (discardDevice) Flush() error {
	return nil
}
