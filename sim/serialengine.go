package sim

import (
	"sync"
	"sync/atomic"
)

// A SerialEngine is an Engine that always run events one after another.
type SerialEngine struct {
	HookableBase

	clock     *Clock
	queue     *EventQueueImpl
	scheduler *Scheduler

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	stopped    atomic.Bool
	eventCount atomic.Int64
}

// NewSerialEngine creates a SerialEngine
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)

	e.clock = NewClock()
	e.queue = NewEventQueue()
	e.scheduler = NewScheduler(e.clock, e.queue)

	return e
}

// CurrentTime returns the current time at which the engine is at.
// Specifically, the run time of the current event.
func (e *SerialEngine) CurrentTime() VTimeInSec {
	return e.clock.CurrentTime()
}

// Scheduler returns the scheduling API bound to this engine.
func (e *SerialEngine) Scheduler() *Scheduler {
	return e.scheduler
}

// Peek returns the due time of the next live event, if any.
func (e *SerialEngine) Peek() (VTimeInSec, bool) {
	evt := e.queue.Peek()
	if evt == nil {
		return 0, false
	}

	return evt.time, true
}

// Step dispatches the next live event. The clock advances to the event time
// before the action runs.
func (e *SerialEngine) Step(state any) (bool, error) {
	e.pauseLock.Lock()
	defer e.pauseLock.Unlock()

	evt := e.queue.Pop()
	if evt == nil {
		return false, nil
	}

	e.clock.advanceTo(evt.time)
	e.eventCount.Add(1)

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeEvent,
		Item:   evt,
	}
	e.InvokeHook(hookCtx)

	err := evt.action(state, e.scheduler)

	hookCtx.Pos = HookPosAfterEvent
	e.InvokeHook(hookCtx)

	if err != nil {
		return true, &ActionError{Now: evt.time, Err: err}
	}

	return true, nil
}

// AdvanceTo moves the clock forward to t without dispatching an event.
func (e *SerialEngine) AdvanceTo(t VTimeInSec) {
	e.clock.advanceTo(t)
}

// Run processes all the events scheduled in the SerialEngine
func (e *SerialEngine) Run(state any) error {
	for {
		if e.stopped.Load() {
			return nil
		}

		dispatched, err := e.Step(state)
		if err != nil {
			return err
		}

		if !dispatched {
			return nil
		}
	}
}

// Pause prevents the SerialEngine to trigger more events.
func (e *SerialEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows the SerialEngine to trigger more events.
func (e *SerialEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// Stop requests the run to end before the next event dispatch. It is the
// cancellation flag a host can set from another goroutine.
func (e *SerialEngine) Stop() {
	e.stopped.Store(true)
}

// Stopped tells if Stop has been called.
func (e *SerialEngine) Stopped() bool {
	return e.stopped.Load()
}

// EventCount returns the number of events dispatched so far.
func (e *SerialEngine) EventCount() int64 {
	return e.eventCount.Load()
}
