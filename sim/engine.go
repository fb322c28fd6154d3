package sim

// An Engine drives a discrete event simulation run. It owns the clock and
// the future-event set, and dispatches events one at a time.
type Engine interface {
	Hookable
	TimeTeller

	// Scheduler returns the scheduling API bound to this engine. Event
	// actions receive the same value.
	Scheduler() *Scheduler

	// Peek returns the due time of the next live event, if any.
	Peek() (VTimeInSec, bool)

	// Step dispatches the next live event: the clock advances to the event
	// time and the action runs with the given model state. Step reports
	// whether an event was dispatched. A non-nil error means the action
	// failed and the run must abort.
	Step(state any) (bool, error)

	// AdvanceTo moves the clock forward without dispatching an event. The
	// run controller uses it to place the clock on warm-up and snap
	// boundaries.
	AdvanceTo(t VTimeInSec)

	// Run dispatches events until no live event remains, the engine is
	// stopped, or an action fails.
	Run(state any) error

	// Pause blocks dispatching until Continue is called.
	Pause()

	// Continue resumes a paused engine.
	Continue()

	// Stop requests the run to end at the next event boundary. Safe to call
	// from another goroutine.
	Stop()

	// Stopped tells if Stop has been called.
	Stopped() bool

	// EventCount returns the number of events dispatched so far.
	EventCount() int64
}
