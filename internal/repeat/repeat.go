// Package repeat runs a task repeatedly while a step button is held down.
package repeat

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultDelay        = 600 * time.Millisecond
	DefaultInterval     = 200 * time.Millisecond
	DefaultMinInterval  = 50 * time.Millisecond
	DefaultAcceleration = 0.8
)

// Repeater executes a task after an initial delay and then at an
// interval that shrinks after every tick down to a minimum.
type Repeater struct {
	delay        time.Duration
	interval     time.Duration
	minInterval  time.Duration
	acceleration float64

	// task is executed on the worker goroutine, never concurrently with itself.
	task func()

	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	clock clockwork.Clock
}

type Option func(r *Repeater)

// WithDelay sets the delay before the first tick.
func WithDelay(d time.Duration) Option {
	return func(r *Repeater) {
		if d > 0 {
			r.delay = d
		}
	}
}

// WithInterval sets the interval between the first and the second tick.
func WithInterval(d time.Duration) Option {
	return func(r *Repeater) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithMinInterval sets the lower limit of the interval.
func WithMinInterval(d time.Duration) Option {
	return func(r *Repeater) {
		if d > 0 {
			r.minInterval = d
		}
	}
}

// WithAcceleration sets the factor applied to the interval after each tick.
// Factors outside (0, 1] are ignored; 1 keeps the interval constant.
func WithAcceleration(f float64) Option {
	return func(r *Repeater) {
		if f > 0 && f <= 1 {
			r.acceleration = f
		}
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(r *Repeater) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// Start creates a repeater and begins to wait for the first tick.
func Start(task func(), opts ...Option) *Repeater {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Repeater{
		delay:        DefaultDelay,
		interval:     DefaultInterval,
		minInterval:  DefaultMinInterval,
		acceleration: DefaultAcceleration,
		task:         task,
		cancel:       cancel,
		stopped:      make(chan struct{}),
		clock:        clockwork.NewRealClock(),
	}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	if r.minInterval > r.interval {
		r.minInterval = r.interval
	}

	timer := r.clock.NewTimer(r.delay)
	go r.worker(ctx, timer)

	return r
}

// Cancel prevents further ticks without waiting for a running one.
// It may be called from the task itself.
func (r *Repeater) Cancel() {
	r.once.Do(r.cancel)
}

// Stop cancels the repeater and waits until the worker exits.
// No tick starts after Stop returns.
// Stop must not be called from the task; use Cancel there.
func (r *Repeater) Stop() {
	r.Cancel()
	<-r.stopped
}

// Done is closed when the worker exits.
func (r *Repeater) Done() <-chan struct{} {
	return r.stopped
}

func (r *Repeater) worker(ctx context.Context, timer clockwork.Timer) {
	defer close(r.stopped)
	defer timer.Stop()

	interval := r.interval
	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.Chan():
			if ctx.Err() != nil {
				return
			}
			r.task()

			timer.Reset(interval)
			interval = max(r.minInterval, time.Duration(float64(interval)*r.acceleration))
		}
	}
}
