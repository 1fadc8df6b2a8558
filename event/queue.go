package event

import (
	"sync/atomic"

	"github.com/lixenwraith/axododge/parameter"
)

// EventQueue is a fixed ring of pending match events
// Any goroutine may Emit; only the loop goroutine drains
// A full ring overwrites its oldest entries and counts them in Dropped
type EventQueue struct {
	slots [parameter.EventQueueSize]slot
	head  atomic.Uint64 // Next index to read
	tail  atomic.Uint64 // Next index to claim
	drops atomic.Int64
}

type slot struct {
	ev    GameEvent
	ready atomic.Bool // Set once ev is fully written
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next slot and publishes ev into it
func (q *EventQueue) Push(ev GameEvent) {
	idx := q.tail.Add(1) - 1
	s := &q.slots[idx&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	// Pull the reader forward past anything just overwritten
	for {
		head := q.head.Load()
		floor := idx + 1
		if floor <= parameter.EventQueueSize || head >= floor-parameter.EventQueueSize {
			return
		}
		if q.head.CompareAndSwap(head, floor-parameter.EventQueueSize) {
			q.drops.Add(int64(floor - parameter.EventQueueSize - head))
			return
		}
	}
}

// Emit pushes an event of type t stamped with frame
func (q *EventQueue) Emit(t EventType, payload any, frame int64) {
	q.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Drain appends pending events to dst in FIFO order and returns it
// Stops early at a slot whose producer has not finished writing
func (q *EventQueue) Drain(dst []GameEvent) []GameEvent {
	for {
		seen, tail := q.head.Load(), q.tail.Load()
		if seen == tail {
			return dst
		}
		head := seen
		if tail-head > parameter.EventQueueSize {
			head = tail - parameter.EventQueueSize
		}

		start := len(dst)
		next := head
		for ; next < tail; next++ {
			s := &q.slots[next&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			dst = append(dst, s.ev)
		}

		if q.head.CompareAndSwap(seen, next) {
			for i := head; i < next; i++ {
				q.slots[i&parameter.EventBufferMask].ready.Store(false)
			}
			return dst
		}
		dst = dst[:start]
	}
}

// Consume returns all pending events, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	evs := q.Drain(nil)
	if len(evs) == 0 {
		return nil
	}
	return evs
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	n := q.tail.Load() - q.head.Load()
	return int(min(n, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being read
func (q *EventQueue) Dropped() int64 {
	return q.drops.Load()
}
