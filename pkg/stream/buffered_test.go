package stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vnykmshr/ostream/internal/testutil"
	oserrors "github.com/vnykmshr/ostream/pkg/common/errors"
	"github.com/vnykmshr/ostream/pkg/device"
)

func newBuffered(t *testing.T, dev device.Device, capacity int) *Stream {
	t.Helper()
	st, err := NewBufferedWithConfig(dev, Config{Capacity: capacity})
	testutil.AssertNoError(t, err)
	return st
}

func TestNewBufferedDefaults(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := NewBuffered(dev)

	testutil.AssertEqual(t, st.Capacity(), DefaultCapacity)
	testutil.AssertEqual(t, st.Pending(), 0)
}

func TestNewBufferedWithConfigValidation(t *testing.T) {
	dev := testutil.NewMockDevice()

	_, err := NewBufferedWithConfig(dev, Config{Capacity: 0})
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, oserrors.IsValidationError(err), true)

	_, err = NewBufferedWithConfig(dev, Config{Capacity: -8})
	testutil.AssertError(t, err)

	_, err = NewBufferedWithConfig(nil, DefaultConfig())
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, errors.Is(err, oserrors.ErrInvalidConfiguration), true)
}

func TestBufferedStagesSmallWrites(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 16)

	st.Write([]byte("hello"))
	testutil.AssertEqual(t, st.Pending(), 5)
	testutil.AssertEqual(t, dev.WriteCount(), 0)

	st.Write([]byte(" world"))
	testutil.AssertEqual(t, st.Pending(), 11)
	testutil.AssertEqual(t, dev.WriteCount(), 0)

	st.Flush()
	testutil.AssertEqual(t, st.Pending(), 0)
	testutil.AssertEqual(t, dev.WriteCount(), 1)
	testutil.AssertEqual(t, dev.String(), "hello world")
}

func TestBufferedEmptyWriteIsNoOp(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	st.Write([]byte("ab"))
	before := st.Pending()

	st.Write(nil)
	st.Write([]byte{})

	testutil.AssertEqual(t, st.Pending(), before)
	testutil.AssertEqual(t, dev.WriteCount(), 0)
	testutil.AssertEqual(t, dev.FlushCount(), 0)
}

func TestBufferedEvictionOrdering(t *testing.T) {
	// Capacity 8: "ab" then "cdefgh" fill the buffer exactly with no
	// device traffic; "i" forces one drain of the 8 staged bytes first.
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	st.Write([]byte("ab"))
	testutil.AssertEqual(t, dev.WriteCount(), 0)
	testutil.AssertEqual(t, st.Pending(), 2)

	st.Write([]byte("cdefgh"))
	testutil.AssertEqual(t, dev.WriteCount(), 0)
	testutil.AssertEqual(t, st.Pending(), 8)

	st.Write([]byte("i"))
	testutil.AssertEqual(t, dev.WriteCount(), 1)
	testutil.AssertEqual(t, string(dev.WriteAt(0)), "abcdefgh")
	testutil.AssertEqual(t, st.Pending(), 1)

	st.Flush()
	testutil.AssertEqual(t, dev.String(), "abcdefghi")
}

func TestBufferedOversizedBypass(t *testing.T) {
	t.Run("empty buffer writes directly", func(t *testing.T) {
		// Capacity 4, nothing staged: "hello" goes straight through
		// with no drain write.
		dev := testutil.NewMockDevice()
		st := newBuffered(t, dev, 4)

		st.Write([]byte("hello"))

		testutil.AssertEqual(t, dev.WriteCount(), 1)
		testutil.AssertEqual(t, string(dev.WriteAt(0)), "hello")
		testutil.AssertEqual(t, st.Pending(), 0)
	})

	t.Run("staged bytes drain first", func(t *testing.T) {
		dev := testutil.NewMockDevice()
		st := newBuffered(t, dev, 4)

		st.Write([]byte("ab"))
		st.Write([]byte("oversized"))

		testutil.AssertEqual(t, dev.WriteCount(), 2)
		testutil.AssertEqual(t, string(dev.WriteAt(0)), "ab")
		testutil.AssertEqual(t, string(dev.WriteAt(1)), "oversized")
		testutil.AssertEqual(t, st.Pending(), 0)
	})
}

func TestBufferedInsufficientRoomDrainsThenStages(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	st.Write([]byte("abcde"))
	st.Write([]byte("fghij")) // fits capacity but not remaining room

	testutil.AssertEqual(t, dev.WriteCount(), 1)
	testutil.AssertEqual(t, string(dev.WriteAt(0)), "abcde")
	testutil.AssertEqual(t, st.Pending(), 5)

	st.Flush()
	testutil.AssertEqual(t, dev.String(), "abcdefghij")
}

func TestBufferedExactFitStaysStaged(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	st.Write([]byte("12345678"))

	testutil.AssertEqual(t, dev.WriteCount(), 0)
	testutil.AssertEqual(t, st.Pending(), 8)
}

func TestFlushAlwaysSyncsDevice(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	// Nothing staged: no drain write, still one device flush
	st.Flush()
	testutil.AssertEqual(t, dev.WriteCount(), 0)
	testutil.AssertEqual(t, dev.FlushCount(), 1)

	st.Write([]byte("x"))
	st.Flush()
	testutil.AssertEqual(t, dev.WriteCount(), 1)
	testutil.AssertEqual(t, dev.FlushCount(), 2)
}

func TestBufferedSwallowsDeviceFailures(t *testing.T) {
	dev := testutil.NewMockDevice()
	dev.SetWriteError(errors.New("broken pipe"))
	dev.SetFlushError(errors.New("sync failed"))
	st := newBuffered(t, dev, 4)

	// None of these may panic or surface anything
	st.Write([]byte("staged")).Flush()
	st.Str("more").Append(Endl)

	testutil.AssertEqual(t, st.Pending(), 0)
	testutil.AssertEqual(t, dev.Len(), 0)
}

func TestBufferedOrderingAcrossPaths(t *testing.T) {
	// Interleave staged, evicting, and bypass writes; the device must see
	// the exact append order.
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	parts := []string{"aa", "bbbb", "cc", "ddddddddddd", "e", "ffffffff", "g"}
	var want bytes.Buffer
	for _, p := range parts {
		st.Write([]byte(p))
		want.WriteString(p)
	}
	st.Flush()

	testutil.AssertEqual(t, dev.String(), want.String())
}

func TestBufferedAtMostTwoDeviceWritesPerWrite(t *testing.T) {
	dev := testutil.NewMockDevice()
	st := newBuffered(t, dev, 8)

	st.Write([]byte("abc"))
	before := dev.WriteCount()
	st.Write([]byte(strings.Repeat("x", 20)))

	testutil.AssertEqual(t, dev.WriteCount()-before, 2)
}

func TestBufferedFromStdHandles(t *testing.T) {
	// Smoke test the factories; no assertions on actual console output.
	out := BufferedFromStdout()
	testutil.AssertEqual(t, out.Capacity(), DefaultCapacity)

	errStream := BufferedFromStderr()
	testutil.AssertEqual(t, errStream.Capacity(), DefaultCapacity)
}

// Benchmark tests
func BenchmarkBufferedWrite(b *testing.B) {
	st := NewBuffered(device.FromWriter(&bytes.Buffer{}))
	data := []byte("benchmark data")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Write(data)
	}
	st.Flush()
}

func BenchmarkUnbufferedWrite(b *testing.B) {
	st := New(device.FromWriter(&bytes.Buffer{}))
	data := []byte("benchmark data")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Write(data)
	}
	st.Flush()
}

func BenchmarkTypedAppends(b *testing.B) {
	st := NewBuffered(device.FromWriter(&bytes.Buffer{}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Str("iter ").Int(int64(i)).Byte('\n')
	}
	st.Flush()
}
