package sim

// An Action is the operation bound to an event. It runs when the event is
// dispatched, with exclusive access to the model state and the scheduler.
// Returning a non-nil error aborts the run.
type Action func(state any, scheduler *Scheduler) error

// An Event is something going to happen in the future. Events are created by
// the Scheduler. All fields except the liveness mark are immutable after
// creation.
type Event struct {
	id       int64
	time     VTimeInSec
	priority int
	action   Action
	alive    bool
}

// ID returns the identifier assigned to the event at creation. IDs strictly
// increase in creation order within one run.
func (e *Event) ID() int64 {
	return e.id
}

// Time returns the time the event is going to happen.
func (e *Event) Time() VTimeInSec {
	return e.time
}

// Priority returns the event priority. A smaller value dispatches first
// among events due at the same time.
func (e *Event) Priority() int {
	return e.priority
}

// eventBefore is the total order that the future-event set sorts by. Time
// first, then priority, then creation ID. Two live events never compare
// equal under this order.
func eventBefore(a, b *Event) bool {
	if a.time != b.time {
		return a.time < b.time
	}

	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.id < b.id
}

// An EventHandle refers to a scheduled event. Its only use is cancellation.
// Handles do not keep the event alive; a handle to an event that already
// fired is harmless.
type EventHandle struct {
	id int64
}

// ID returns the identifier of the referenced event.
func (h EventHandle) ID() int64 {
	return h.id
}
