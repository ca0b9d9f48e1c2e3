// Package device adapts OS-level I/O endpoints to the contract streams
// consume: a raw write plus a flush, nothing else.
//
// # Factories
//
//	device.FromStdout()        // standard output
//	device.FromStderr()        // standard error
//	device.FromFile(f)         // any open *os.File
//	device.FromWriter(w)       // any io.Writer
//	device.Discard()           // accepts everything, keeps nothing
//
// FromWriter flushes through the writer's own Flush method when it has one
// (bufio.Writer for instance) and is a no-op flush otherwise.
//
// # Console wideness
//
// Devices may implement the WideConsole capability. Std-handle devices report
// a UTF-16-native console on Windows only; streams use this to decide whether
// wide appends need transcoding.
//
// # Observability
//
// Streams ignore device outcomes by policy. NewWithMetrics wraps any device
// with Prometheus counters for writes, bytes, flushes, and the errors and
// dropped bytes the stream layer never sees:
//
//	dev := device.NewWithMetrics(device.FromStdout(), "stdout")
//	s := stream.NewBuffered(dev)
//
// For shipping output to a remote sink, see the redisdev subpackage.
package device
