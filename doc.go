/*
Package ostream provides a uniform typed output-stream abstraction over
heterogeneous I/O endpoints: console handles, arbitrary writers, Redis
stream sinks, and a discard sink.

Streams (pkg/stream):
  - Unbuffered, buffered, and null output streams with one contract
  - Typed appends: bytes, runes, integers, floats, pointers, strings, UTF-16
  - Best-effort semantics: device and conversion failures never surface

Devices (pkg/device):
  - Adapters binding streams to stdout, stderr, files, or any io.Writer
  - redisdev: ship output to a Redis stream
  - Prometheus-instrumented device wrapper for observability

Flushing (pkg/flusher):
  - Interval or cron-driven flushing of registered streams

Example usage:

	import (
		"github.com/vnykmshr/ostream/pkg/stream"
	)

	s := stream.BufferedFromStdout()
	s.Str("answer: ").Int(42).Append(stream.Endl)

A stream never reports errors; output is diagnostic, not durable. Attach an
instrumented device if dropped writes need to be visible.
*/
package ostream
