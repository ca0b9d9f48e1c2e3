/*
Package stream provides typed output streams over devices, with optional
fixed-capacity buffering and a discard variant.

Every stream exposes one contract: a raw byte write, a flush, and a family
of typed appends that all reduce to the byte write. Nothing ever fails from
the caller's point of view; device and conversion problems degrade to
missing output, never to an error or panic. That policy is the point:
diagnostic text must never abort the code producing it.

# Quick Start

	s := stream.BufferedFromStdout()
	s.Str("processed ").Int(int64(n)).Str(" records").Append(stream.Endl)

# Variants

Three variants share the contract, selected by constructor:

	stream.New(dev)          // unbuffered: one device write per append
	stream.NewBuffered(dev)  // staging buffer, drained on demand
	stream.NewNull()         // drops everything

Buffering coalesces small appends into few device writes. The staging buffer
has a fixed capacity (1024 bytes by default):

	s, err := stream.NewBufferedWithConfig(dev, stream.Config{Capacity: 8192})

A write larger than the capacity drains the staged bytes and then goes to
the device directly, so byte order is preserved and a single write is never
split across stagings.

# Typed appends

	s.Byte('!')              // one byte
	s.Rune('λ')              // UTF-8 encoding
	s.Int(-42)               // decimal text
	s.Uint(7)                // decimal text
	s.Float(2.5)             // shortest round-trip text
	s.Pointer(&v)            // lowercase hex address
	s.Str("text")            // verbatim
	s.Bytes(raw)             // verbatim
	s.UTF16(units)           // wide string, transcoded on wide consoles

Append dispatches mixed values and understands the two markers:

	s.Append("x = ", 42, stream.Endl)   // "x = 42\n" + flush
	s.Append(stream.Flush)              // flush, no text

# Flushing

Flush drains staged bytes and always issues a device sync, even when the
buffer is empty. Buffered streams do NOT flush at teardown; bytes still
staged when the stream is dropped are lost. End output with Flush or Endl,
or register the stream with pkg/flusher.

# Concurrency

A stream instance assumes a single writer. There is no internal locking;
share a stream across goroutines only with external synchronization.
*/
package stream
