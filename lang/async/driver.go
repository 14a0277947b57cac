// Package async implements Hoot's cooperative background-task scheduler
// (spec §4.6). User code itself never runs concurrently: a handful of
// native built-ins (delay, read, write, request) hand work off to a
// goroutine pool, and once the top-level program finishes, Driver.Drain
// resumes each completed task's Hoot callback one at a time on the calling
// goroutine, including any new tasks spawned by those callbacks
// themselves, until none remain.
package async

import (
	"sync/atomic"

	"github.com/hootlang/hoot/lang/interp"
)

// completion is a finished background task's continuation: invoking it
// resumes the Hoot callback (or reports the error) on the driver's
// goroutine.
type completion func()

// Driver schedules and drains Hoot's background tasks.
type Driver struct {
	cfg     Config
	sem     chan struct{} // bounds concurrent read/write/request jobs
	ready   chan completion
	pending int64
	onError func(error)
}

// NewDriver creates a Driver using cfg's worker-pool size. onError is
// called for every background task that fails and was spawned without an
// onError of its own (Spawn prefers the per-task one); the task's Hoot
// callback is
// then never invoked (spec §4.6's cancellation semantics: a failed
// background task reports and is simply dropped, no retry).
func NewDriver(cfg Config, onError func(error)) *Driver {
	return &Driver{
		cfg:     cfg,
		sem:     make(chan struct{}, cfg.WorkerPoolSize),
		ready:   make(chan completion, 64),
		onError: onError,
	}
}

// Spawn runs work on a pooled goroutine. On success onSuccess(result) is
// queued as a completion; on failure, onError is invoked instead and the
// task's callback is skipped entirely.
func (d *Driver) Spawn(work func() (interp.Value, error), onSuccess func(interp.Value), onError func(error)) {
	atomic.AddInt64(&d.pending, 1)
	go func() {
		d.sem <- struct{}{}
		result, err := work()
		<-d.sem

		d.ready <- func() {
			if err != nil {
				if onError != nil {
					onError(err)
				} else if d.onError != nil {
					d.onError(err)
				}
				return
			}
			onSuccess(result)
		}
	}()
}

// BeginTimer registers a pending task that will complete via a timer
// rather than a worker-pool goroutine (used by the `delay` native, which
// schedules through time.AfterFunc instead of occupying a worker-pool
// slot: a sleeping timer is not I/O work). The caller must eventually call
// CompleteTimer exactly once for each BeginTimer call.
func (d *Driver) BeginTimer() {
	atomic.AddInt64(&d.pending, 1)
}

// CompleteTimer queues fn to run during Drain, for a task previously
// registered with BeginTimer.
func (d *Driver) CompleteTimer(fn func()) {
	d.ready <- fn
}

// ReportError reports err through the Driver's onError callback, for a
// native whose background work fails outside the Spawn/BeginTimer success
// path itself (e.g. a delay callback that raises once invoked).
func (d *Driver) ReportError(err error) {
	if d.onError != nil {
		d.onError(err)
	}
}

// Pending reports the number of background tasks not yet drained.
func (d *Driver) Pending() int64 {
	return atomic.LoadInt64(&d.pending)
}

// Drain resumes completions one at a time until no task is pending,
// including tasks spawned by a completion while draining (e.g. a delay
// chained from inside another delay's callback). This is the async
// driver's run-to-completion-then-drain contract (spec §4.6).
func (d *Driver) Drain() {
	for atomic.LoadInt64(&d.pending) > 0 {
		cont := <-d.ready
		cont()
		atomic.AddInt64(&d.pending, -1)
	}
}
