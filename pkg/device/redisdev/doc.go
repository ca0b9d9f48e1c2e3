// Package redisdev provides a device that ships output to a Redis stream.
//
// Each device write becomes one XADD to the configured stream key, carrying
// the raw bytes under the "data" field. This lets diagnostic output from many
// processes fan into a single remote sink that consumers can tail with XREAD.
//
// # Quick Start
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//
//	dev, err := redisdev.New(redisdev.Config{
//		Redis:  rdb,
//		Key:    "diag:worker-1",
//		MaxLen: 10000, // keep roughly the last 10k entries
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := stream.NewBuffered(dev)
//	s.Str("started at ").Int(time.Now().Unix()).Append(stream.Endl)
//
// Buffering upstream matters here: every unbuffered append would cost one
// round trip, while a buffered stream batches appends into one entry per
// drain.
//
// The device returns errors like any other device; streams swallow them by
// policy. Wrap with device.NewWithMetrics to observe delivery failures.
package redisdev
