// Package flusher provides periodic flushing for registered streams.
//
// Buffered streams only reach their device when something flushes them.
// Interactive programs flush at natural points (end of a line, end of a
// command), but daemons writing diagnostic output in bursts can leave
// staged bytes sitting in the buffer indefinitely. A Flusher drains every
// registered stream on a schedule so the staging window is bounded.
//
// Basic usage:
//
//	st := stream.BufferedFromStdout()
//
//	f := flusher.New()
//	f.Add("stdout", st)
//	f.Start()
//	defer f.Stop()
//
//	// Writers append freely; staged output reaches the device within
//	// one interval even if nobody flushes explicitly.
//	st.Str("working...")
//
// Schedules come in two forms. The default is a fixed interval:
//
//	f, err := flusher.NewWithConfig(flusher.Config{
//		Interval: 250 * time.Millisecond,
//	})
//
// or a standard cron expression for coarse schedules:
//
//	f, err := flusher.NewWithConfig(flusher.Config{
//		Spec: "*/5 * * * *", // every five minutes
//	})
//
// Flushing a stream concurrently with its writer is only safe if the two
// sides synchronize; the flusher provides the schedule, not the locking.
// The usual arrangement is one flusher per writer goroutine, or streams
// whose callers already serialize access.
//
// With metrics enabled the flusher reports flush runs and the number of
// registered streams:
//
//	f, err := flusher.NewWithConfig(flusher.Config{
//		Metrics: metrics.Config{Enabled: true},
//	})
package flusher
