package bubblechart

// Scheduler defers work to the next turn of the host event loop.
type Scheduler interface {
	Defer(fn func())
}

// FrameScheduler queues deferred jobs and runs them when Flush is called.
// Chart flushes it at the start of every Update tick, so a job deferred during
// tick N runs at the start of tick N+1. Jobs deferred while flushing wait for
// the following Flush.
type FrameScheduler struct {
	queue   []func()
	running []func()
}

// Defer queues fn.
func (s *FrameScheduler) Defer(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued jobs.
func (s *FrameScheduler) Pending() int {
	return len(s.queue)
}

// Flush runs every job queued before the call.
func (s *FrameScheduler) Flush() {
	if len(s.queue) == 0 {
		return
	}
	s.running, s.queue = s.queue, s.running[:0]
	for i, fn := range s.running {
		fn()
		s.running[i] = nil
	}
	s.running = s.running[:0]
}

// invalidation coalesces reflow/repaint requests into one scheduled job.
type invalidation struct {
	reflow    bool
	repaint   bool
	scheduled bool
}

// request merges a request and reports whether a job must be scheduled.
func (v *invalidation) request(reflow, repaint bool) bool {
	v.reflow = v.reflow || reflow
	v.repaint = v.repaint || repaint || reflow
	if v.scheduled {
		return false
	}
	v.scheduled = true
	return true
}

// take returns and clears the pending request.
func (v *invalidation) take() (reflow, repaint bool) {
	reflow, repaint = v.reflow, v.repaint
	v.reflow, v.repaint, v.scheduled = false, false, false
	return reflow, repaint
}
