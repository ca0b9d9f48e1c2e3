package flusher

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	oserrors "github.com/vnykmshr/ostream/pkg/common/errors"
	"github.com/vnykmshr/ostream/pkg/common/validation"
	"github.com/vnykmshr/ostream/pkg/metrics"
	"github.com/vnykmshr/ostream/pkg/stream"
)

var (
	// ErrAlreadyRunning is returned when Start is called on a running flusher.
	ErrAlreadyRunning = errors.New("flusher is already running")

	// ErrNotRunning is returned when Stop is called on a stopped flusher.
	ErrNotRunning = errors.New("flusher is not running")

	// ErrDuplicateID is returned when Add reuses an existing stream ID.
	ErrDuplicateID = errors.New("stream ID already registered")
)

// Flusher periodically flushes a set of registered streams. It exists for
// long-lived buffered streams whose writers produce output in bursts:
// between bursts the staged bytes would otherwise sit invisible until the
// next explicit flush.
type Flusher interface {
	// Add registers st under id. The stream is flushed on every run.
	Add(id string, st *stream.Stream) error

	// Remove deregisters the stream under id, reporting whether it existed.
	// The stream is not flushed on removal.
	Remove(id string) bool

	// FlushAll flushes every registered stream immediately, outside the
	// schedule.
	FlushAll()

	// IDs returns the registered stream IDs in sorted order.
	IDs() []string

	// Len returns the number of registered streams.
	Len() int

	// Lifecycle
	Start() error
	Stop() error
}

// Config holds flusher configuration.
type Config struct {
	// Name labels this flusher's metrics (default: "default").
	Name string

	// Interval between flush runs (default: 1s). Ignored when Spec is set.
	Interval time.Duration

	// Spec is an optional standard cron expression ("*/5 * * * *"). When
	// set it replaces Interval as the schedule.
	Spec string

	// Location resolves cron times (default: time.Local).
	Location *time.Location

	// Metrics configures metrics collection.
	Metrics metrics.Config
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Name:     "default",
		Interval: time.Second,
	}
}

type flusher struct {
	name      string
	interval  time.Duration
	schedule  cron.Schedule
	location  *time.Location
	registry  *metrics.Registry
	metricsOn bool

	mu      sync.RWMutex
	streams map[string]*stream.Stream
	done    chan struct{}
	stopped chan struct{}
	running bool
}

// New creates a flusher with the default configuration.
func New() Flusher {
	f, _ := NewWithConfig(DefaultConfig())
	return f
}

// NewWithConfig creates a flusher with custom configuration.
func NewWithConfig(cfg Config) (Flusher, error) {
	name := cfg.Name
	if name == "" {
		name = "default"
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	var schedule cron.Schedule
	if cfg.Spec != "" {
		s, err := cron.ParseStandard(cfg.Spec)
		if err != nil {
			return nil, oserrors.NewValidationError("flusher", "spec", cfg.Spec, err.Error()).
				WithHint("use a standard five-field cron expression, e.g. */5 * * * *")
		}
		schedule = s
	}

	registry := metrics.DefaultRegistry
	if cfg.Metrics.Registry != nil {
		registry = metrics.NewRegistry(cfg.Metrics.Registry)
	}

	return &flusher{
		name:      name,
		interval:  interval,
		schedule:  schedule,
		location:  location,
		registry:  registry,
		metricsOn: cfg.Metrics.Enabled,
		streams:   make(map[string]*stream.Stream),
	}, nil
}

func (f *flusher) Add(id string, st *stream.Stream) error {
	if err := validation.ValidateNotEmpty("flusher", "id", id); err != nil {
		return err
	}
	if st == nil {
		return validation.ValidateNotNil("flusher", "stream", nil)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.streams[id]; exists {
		return ErrDuplicateID
	}
	f.streams[id] = st
	f.recordCount(len(f.streams))

	return nil
}

func (f *flusher) Remove(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.streams[id]; !exists {
		return false
	}
	delete(f.streams, id)
	f.recordCount(len(f.streams))

	return true
}

func (f *flusher) FlushAll() {
	f.mu.RLock()
	targets := make([]*stream.Stream, 0, len(f.streams))
	for _, st := range f.streams {
		targets = append(targets, st)
	}
	f.mu.RUnlock()

	// Flush outside the lock: a slow device must not block Add/Remove.
	for _, st := range targets {
		st.Flush()
	}

	if f.metricsOn {
		f.registry.FlusherRuns.WithLabelValues(f.name).Inc()
	}
}

func (f *flusher) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]string, 0, len(f.streams))
	for id := range f.streams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *flusher) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.streams)
}

func (f *flusher) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return ErrAlreadyRunning
	}
	f.running = true
	f.done = make(chan struct{})
	f.stopped = make(chan struct{})

	go f.run(f.done, f.stopped)
	return nil
}

func (f *flusher) Stop() error {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return ErrNotRunning
	}
	f.running = false
	done, stopped := f.done, f.stopped
	f.mu.Unlock()

	close(done)
	<-stopped
	return nil
}

func (f *flusher) run(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	if f.schedule != nil {
		f.runCron(done)
		return
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			f.FlushAll()
		}
	}
}

func (f *flusher) runCron(done <-chan struct{}) {
	for {
		now := time.Now().In(f.location)
		next := f.schedule.Next(now)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-done:
			timer.Stop()
			return
		case <-timer.C:
			f.FlushAll()
		}
	}
}

// recordCount publishes the registration count. Callers hold the lock.
func (f *flusher) recordCount(n int) {
	if f.metricsOn {
		f.registry.FlusherStreams.WithLabelValues(f.name).Set(float64(n))
	}
}
