// Package runloop provides single-owner task scheduling for UI-bound
// components. A loop stands in for "the next turn of the UI event loop":
// work posted to it runs serially, on one goroutine, in post order.
// This is part of the platform layer and contains no business logic.
package runloop

import "sync"

// Loop is a serial executor owned by the goroutine that calls Run.
// Schedule may be called from any goroutine; tasks never run concurrently.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with a bounded task queue.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 64
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Schedule enqueues a task for the loop's next turn.
// Tasks scheduled after Close are dropped.
func (l *Loop) Schedule(task func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.tasks <- task:
	case <-l.done:
	}
}

// Run processes tasks on the calling goroutine until Close.
// The calling goroutine becomes the loop's single logical owner.
func (l *Loop) Run() {
	for {
		select {
		case <-l.done:
			return
		default:
		}
		select {
		case task := <-l.tasks:
			task()
		case <-l.done:
			return
		}
	}
}

// Close stops the loop. Pending tasks are discarded.
func (l *Loop) Close() {
	l.once.Do(func() {
		close(l.done)
	})
}

// Manual is a loop driven explicitly by its owner. Hosts that already run
// their own event loop (and tests) call Drain at the point that corresponds
// to their loop's next turn. Not safe for concurrent use.
type Manual struct {
	queue []func()
}

// Schedule enqueues a task until the next Drain.
func (m *Manual) Schedule(task func()) {
	m.queue = append(m.queue, task)
}

// Drain runs all queued tasks, including tasks they schedule in turn,
// and reports how many ran.
func (m *Manual) Drain() int {
	ran := 0
	for len(m.queue) > 0 {
		task := m.queue[0]
		m.queue = m.queue[1:]
		task()
		ran++
	}
	return ran
}

// Pending reports the number of tasks waiting for the next Drain.
func (m *Manual) Pending() int {
	return len(m.queue)
}
