package redisdev

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	oserrors "github.com/vnykmshr/ostream/pkg/common/errors"
	"github.com/vnykmshr/ostream/pkg/common/validation"
)

// entryField is the Redis stream entry field holding the written bytes.
const entryField = "data"

// Config holds configuration options for a Redis stream device.
type Config struct {
	// Redis client used to reach the sink. Required. The caller owns the
	// client and its lifecycle.
	Redis redis.UniversalClient

	// Key is the Redis stream key output is appended to. Required.
	Key string

	// MaxLen caps the stream length with approximate trimming.
	// Zero leaves the stream unbounded.
	MaxLen int64

	// Timeout bounds each Redis operation (defaults to 500ms).
	Timeout time.Duration
}

// Device appends every write as one entry of a Redis stream so diagnostic
// output can be shipped to a remote sink. Entries carry the raw bytes under
// the "data" field.
//
// Redis streams have no endpoint-side buffering, so Flush only verifies the
// connection is alive.
type Device struct {
	config Config
	closed int32 // atomic
}

// New creates a Redis stream device from the given configuration.
func New(config Config) (*Device, error) {
	if config.Redis == nil {
		return nil, validation.ValidateNotNil("redisdev", "redis", nil)
	}
	if err := validation.ValidateNotEmpty("redisdev", "key", config.Key); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = 500 * time.Millisecond
	}

	return &Device{config: config}, nil
}

// Write appends p as one stream entry.
func (d *Device) Write(p []byte) (int, error) {
	if atomic.LoadInt32(&d.closed) != 0 {
		return 0, oserrors.ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.config.Timeout)
	defer cancel()

	args := &redis.XAddArgs{
		Stream: d.config.Key,
		Values: map[string]interface{}{entryField: p},
	}
	if d.config.MaxLen > 0 {
		args.MaxLen = d.config.MaxLen
		args.Approx = true
	}

	if err := d.config.Redis.XAdd(ctx, args).Err(); err != nil {
		return 0, oserrors.NewOperationError("redisdev", "Write", err)
	}

	return len(p), nil
}

// Flush pings the sink. XADD is immediate, so there is nothing staged to
// push out; a failing ping still surfaces a dead sink to instrumented
// wrappers.
func (d *Device) Flush() error {
	if atomic.LoadInt32(&d.closed) != 0 {
		return oserrors.ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.config.Timeout)
	defer cancel()

	if err := d.config.Redis.Ping(ctx).Err(); err != nil {
		return oserrors.NewOperationError("redisdev", "Flush", err)
	}
	return nil
}

// Close detaches the device. Subsequent operations fail with ErrClosed.
// The Redis client itself is left open for its owner.
func (d *Device) Close() error {
	atomic.StoreInt32(&d.closed, 1)
	return nil
}
