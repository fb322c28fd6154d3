package sim

import (
	"container/heap"
)

// EventQueue is the future-event set: a queue of pending events ordered by
// time, then priority, then creation ID.
type EventQueue interface {
	Push(evt *Event)
	Pop() *Event
	Peek() *Event
	Len() int
	Cancel(id int64)
}

// EventQueueImpl keeps events in a binary min-heap. Cancellation is lazy: a
// cancelled event keeps its heap slot until it surfaces at the top and is
// discarded. The queue never re-heapifies on cancel.
type EventQueueImpl struct {
	events eventHeap
	byID   map[int64]*Event
	live   int
}

// NewEventQueue creates and returns a newly created EventQueue
func NewEventQueue() *EventQueueImpl {
	q := new(EventQueueImpl)
	q.events = make([]*Event, 0)
	q.byID = make(map[int64]*Event)
	heap.Init(&q.events)
	return q
}

// Push adds an event to the event queue
func (q *EventQueueImpl) Push(evt *Event) {
	heap.Push(&q.events, evt)
	q.byID[evt.id] = evt
	q.live++
}

// Pop removes and returns the next live event. Cancelled events surfacing at
// the top of the heap are discarded along the way. Pop returns nil when no
// live event remains.
func (q *EventQueueImpl) Pop() *Event {
	for q.events.Len() > 0 {
		evt := heap.Pop(&q.events).(*Event)
		delete(q.byID, evt.id)

		if evt.alive {
			q.live--
			return evt
		}
	}

	return nil
}

// Peek returns the next live event without removing it from the queue, or
// nil if the queue holds no live event.
func (q *EventQueueImpl) Peek() *Event {
	for q.events.Len() > 0 {
		evt := q.events[0]
		if evt.alive {
			return evt
		}

		heap.Pop(&q.events)
		delete(q.byID, evt.id)
	}

	return nil
}

// Len returns the number of live events in the queue.
func (q *EventQueueImpl) Len() int {
	return q.live
}

// Cancel marks the event with the given ID as no longer alive. Unknown IDs,
// already-fired events, and repeated cancellation are silent no-ops.
func (q *EventQueueImpl) Cancel(id int64) {
	evt, ok := q.byID[id]
	if !ok || !evt.alive {
		return
	}

	evt.alive = false
	q.live--
}

type eventHeap []*Event

// Len returns the length of the event queue
func (h eventHeap) Len() int {
	return len(h)
}

// Less determines the order between two events. Less returns true if the
// i-th event dispatches before the j-th event.
func (h eventHeap) Less(i, j int) bool {
	return eventBefore(h[i], h[j])
}

// Swap changes the position of two events in the event queue
func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Push adds an event into the event queue
func (h *eventHeap) Push(x interface{}) {
	event := x.(*Event)
	*h = append(*h, event)
}

// Pop removes and returns the next event to happen
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	event := old[n-1]
	*h = old[0 : n-1]
	return event
}
