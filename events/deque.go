// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Deque is an infinitely buffered double-ended queue of events.
// The zero value is usable, but a Deque value must not be copied.
// All events are delivered in order to a single consumer, so event
// handling never races with a concurrent producer.
type Deque struct {
	mu    sync.Mutex
	cond  sync.Cond // cond.L is lazily initialized to &mu
	back  []Event   // FIFO
	front []Event   // LIFO

	closed bool
}

func (q *Deque) lockAndInit() {
	q.mu.Lock()
	if q.cond.L == nil {
		q.cond.L = &q.mu
	}
}

// NextEvent returns the next event in the deque.
// It blocks until such an event has been sent.
// It returns nil after [Deque.Close] once the deque has drained.
func (q *Deque) NextEvent() Event {
	q.lockAndInit()
	defer q.mu.Unlock()

	for {
		if n := len(q.front); n > 0 {
			ev := q.front[n-1]
			q.front[n-1] = nil
			q.front = q.front[:n-1]
			return ev
		}
		if n := len(q.back); n > 0 {
			ev := q.back[0]
			q.back[0] = nil
			q.back = q.back[1:]
			return ev
		}
		if q.closed {
			return nil
		}
		q.cond.Wait()
	}
}

// PollEvent returns the next event in the deque if one is
// immediately available, without blocking.
func (q *Deque) PollEvent() Event {
	q.lockAndInit()
	defer q.mu.Unlock()

	if n := len(q.front); n > 0 {
		ev := q.front[n-1]
		q.front[n-1] = nil
		q.front = q.front[:n-1]
		return ev
	}
	if n := len(q.back); n > 0 {
		ev := q.back[0]
		q.back[0] = nil
		q.back = q.back[1:]
		return ev
	}
	return nil
}

// Send adds an event to the end of the deque.
// They are returned by NextEvent in FIFO order.
func (q *Deque) Send(ev Event) {
	q.lockAndInit()
	defer q.mu.Unlock()

	q.back = append(q.back, ev)
	q.cond.Signal()
}

// SendFirst adds an event to the front of the deque.
// They are returned by NextEvent in LIFO order,
// and have priority over events sent via Send.
func (q *Deque) SendFirst(ev Event) {
	q.lockAndInit()
	defer q.mu.Unlock()

	q.front = append(q.front, ev)
	q.cond.Signal()
}

// Len returns the number of events currently in the deque.
func (q *Deque) Len() int {
	q.lockAndInit()
	defer q.mu.Unlock()
	return len(q.front) + len(q.back)
}

// Close marks the deque as closed, unblocking any NextEvent callers
// once remaining events have drained. Events sent after Close are
// still delivered to PollEvent but no longer block NextEvent.
func (q *Deque) Close() {
	q.lockAndInit()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
