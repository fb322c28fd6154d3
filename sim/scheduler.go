package sim

import (
	"github.com/Facsimiler/facsimile/sim/id"
	"github.com/Facsimiler/facsimile/sim/rng"
)

// A Scheduler is the scheduling API handed to event actions. It creates
// events, assigns their IDs, and inserts them into the future-event set.
// Its lifecycle is bound to a single run.
type Scheduler struct {
	clock   *Clock
	queue   EventQueue
	ids     id.Generator
	streams *rng.Source

	terminationRequested bool
}

// NewScheduler creates a Scheduler over the given clock and future-event
// set.
func NewScheduler(clock *Clock, queue EventQueue) *Scheduler {
	return &Scheduler{
		clock:   clock,
		queue:   queue,
		ids:     id.NewGenerator(),
		streams: rng.NewSource(0),
	}
}

// UseRandomSource replaces the source behind Stream. The run controller
// calls it before the run starts, with the source derived from the master
// seed.
func (s *Scheduler) UseRandomSource(streams *rng.Source) {
	s.streams = streams
}

// Stream returns the named random stream of the run, creating it on first
// use.
func (s *Scheduler) Stream(name string) *rng.Stream {
	return s.streams.Stream(name)
}

// CurrentTime returns the current simulation time.
func (s *Scheduler) CurrentTime() VTimeInSec {
	return s.clock.CurrentTime()
}

// ScheduleAt inserts an event due at absolute time t. Scheduling in the
// past is a programmer error and returns a BackInTimeError; the run must
// not continue after it.
func (s *Scheduler) ScheduleAt(
	t VTimeInSec,
	priority int,
	action Action,
) (EventHandle, error) {
	now := s.clock.CurrentTime()
	if t < now {
		return EventHandle{}, &BackInTimeError{Now: now, Due: t}
	}

	evt := &Event{
		id:       s.ids.Generate(),
		time:     t,
		priority: priority,
		action:   action,
		alive:    true,
	}
	s.queue.Push(evt)

	return EventHandle{id: evt.id}, nil
}

// ScheduleAfter inserts an event due dt seconds from now. A negative delay
// is a programmer error and returns a NegativeDelayError.
func (s *Scheduler) ScheduleAfter(
	dt VTimeInSec,
	priority int,
	action Action,
) (EventHandle, error) {
	now := s.clock.CurrentTime()
	if dt < 0 {
		return EventHandle{}, &NegativeDelayError{Now: now, Delay: dt}
	}

	return s.ScheduleAt(now+dt, priority, action)
}

// Cancel marks the event referenced by the handle as cancelled. The
// dispatcher skips cancelled events when they surface. Cancelling an
// already-fired or already-cancelled event is a silent no-op.
func (s *Scheduler) Cancel(h EventHandle) {
	s.queue.Cancel(h.id)
}

// RequestTermination asks the run controller to end the run at the next
// event boundary. The current action still completes.
func (s *Scheduler) RequestTermination() {
	s.terminationRequested = true
}

// TerminationRequested tells if an action asked for the run to end.
func (s *Scheduler) TerminationRequested() bool {
	return s.terminationRequested
}
