package simulation

import (
	"fmt"
	"sync"

	"github.com/Facsimiler/facsimile/sim"
	"github.com/Facsimiler/facsimile/sim/rng"
)

// runState is the lifecycle of a Runner.
type runState int

const (
	stateIdle runState = iota
	stateRunning
	statePaused
	stateTerminated
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateRunning:
		return "Running"
	case statePaused:
		return "Paused"
	case stateTerminated:
		return "Terminated"
	}
	return "Unknown"
}

// A RunResult summarizes a completed run. Quiescence and external
// cancellation are normal outcomes, not errors.
type RunResult struct {
	// EndTime is the simulation time at which the run ended.
	EndTime sim.VTimeInSec

	// EventsDispatched counts the events whose actions ran.
	EventsDispatched int64

	// SnapsRecorded counts the measurement windows that completed.
	SnapsRecorded int

	// Quiescent tells if the run ended because the future-event set
	// drained before the full duration elapsed.
	Quiescent bool

	// Cancelled tells if the run ended because the host stopped it.
	Cancelled bool

	// TerminationRequested tells if an action asked for the run to end.
	TerminationRequested bool
}

// A Runner executes one simulation run: it seeds the model, dispatches
// events, crosses warm-up and snap boundaries, and reports the outcome. It
// does not validate its configuration. A Runner is good for a single Run
// call.
type Runner struct {
	id         string
	config     Config
	engine     sim.Engine
	model      Model
	modelState any
	streams    *rng.Source
	logSink    LogSink

	observers []Observer

	stateLock sync.Mutex
	state     runState

	started    bool
	warmUpDone bool
	nextSnap   int
	result     RunResult
}

// NewRunner creates a Runner over the given engine and model. The
// configuration must already be validated; Build does that.
func NewRunner(
	id string,
	config Config,
	engine sim.Engine,
	model Model,
	logSink LogSink,
) *Runner {
	r := &Runner{
		id:         id,
		config:     config,
		engine:     engine,
		model:      model,
		modelState: model.ModelState(),
		streams:    rng.NewSource(config.MasterSeed),
		logSink:    logSink,
	}
	engine.Scheduler().UseRandomSource(r.streams)

	return r
}

// ID returns the run identifier.
func (r *Runner) ID() string {
	return r.id
}

// Config returns the configuration of the run.
func (r *Runner) Config() Config {
	return r.config
}

// Engine returns the engine that dispatches the run's events.
func (r *Runner) Engine() sim.Engine {
	return r.engine
}

// ModelState returns the model state the run lends to actions. External
// readers should pause the run before inspecting it.
func (r *Runner) ModelState() any {
	return r.modelState
}

// Streams returns the named random streams of the run.
func (r *Runner) Streams() *rng.Source {
	return r.streams
}

// AddObserver registers an observer to be notified at measurement
// boundaries. Observers fire in registration order.
func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// CurrentTime returns the current simulation time.
func (r *Runner) CurrentTime() sim.VTimeInSec {
	return r.engine.CurrentTime()
}

// State returns the lifecycle state name, for monitoring.
func (r *Runner) State() string {
	r.stateLock.Lock()
	defer r.stateLock.Unlock()

	return r.state.String()
}

// SnapIndex returns the index of the measurement window the run is in.
func (r *Runner) SnapIndex() int {
	return r.nextSnap
}

// EventsDispatched returns the number of events dispatched so far.
func (r *Runner) EventsDispatched() int64 {
	return r.engine.EventCount()
}

// Horizon returns the simulation time at which the run completes.
func (r *Runner) Horizon() sim.VTimeInSec {
	return r.config.Horizon()
}

// Pause blocks the run at the next event boundary.
func (r *Runner) Pause() {
	r.stateLock.Lock()
	if r.state == stateRunning {
		r.state = statePaused
	}
	r.stateLock.Unlock()

	r.engine.Pause()
}

// Continue resumes a paused run.
func (r *Runner) Continue() {
	r.stateLock.Lock()
	if r.state == statePaused {
		r.state = stateRunning
	}
	r.stateLock.Unlock()

	r.engine.Continue()
}

// Stop requests the run to end at the next event boundary. Safe to call
// from another goroutine.
func (r *Runner) Stop() {
	r.engine.Stop()
}

// Run executes the simulation and returns its result. With RunModel off,
// Run validates the model setup only: the model seeds the future-event set
// but no event dispatches.
//
// The first fatal error aborts the run: a failed action, or a scheduling
// misuse an action propagated. Remaining events are discarded and the
// partial result is returned alongside the error.
func (r *Runner) Run() (*RunResult, error) {
	r.setState(stateRunning)
	defer r.setState(stateTerminated)

	state := r.modelState

	err := r.model.Init(state, r.engine.Scheduler())
	if err != nil {
		return r.finish(state), fmt.Errorf("model init: %w", err)
	}

	if !r.config.RunModel {
		r.logSink.Emit(SeverityInfo, "validate-only run, model not executed")
		return r.finish(state), nil
	}

	r.started = true
	for _, o := range r.observers {
		o.RunStarted(r.engine.CurrentTime(), state)
	}

	err = r.dispatchLoop(state)

	result := r.finish(state)
	if err != nil {
		return result, err
	}

	return result, nil
}

// dispatchLoop is the heart of the run: it drains the future-event set,
// advancing the clock and crossing measurement boundaries between events.
func (r *Runner) dispatchLoop(state any) error {
	horizon := r.config.Horizon()
	scheduler := r.engine.Scheduler()

	for {
		if r.engine.Stopped() {
			r.result.Cancelled = true
			r.logSink.Emit(SeverityInfo, "run cancelled by host")
			return nil
		}

		next, ok := r.engine.Peek()
		if !ok {
			if r.engine.CurrentTime() < horizon {
				r.result.Quiescent = true
				r.logSink.Emit(SeverityInfo, fmt.Sprintf(
					"model went quiescent at %.10f, before horizon %.10f",
					r.engine.CurrentTime(), horizon))
			}
			return nil
		}

		boundary := next
		if boundary > horizon {
			boundary = horizon
		}
		r.crossBoundaries(boundary, state)

		if next >= horizon {
			r.engine.AdvanceTo(horizon)
			return nil
		}

		dispatched, err := r.engine.Step(state)
		if err != nil {
			r.logSink.Emit(SeverityError, err.Error())
			return err
		}
		if !dispatched {
			continue
		}

		if scheduler.TerminationRequested() {
			r.result.TerminationRequested = true
			return nil
		}
	}
}

// crossBoundaries advances the clock over every warm-up and snap boundary
// at or before t, notifying observers at each. Boundaries fire before any
// event due exactly at the boundary time.
func (r *Runner) crossBoundaries(t sim.VTimeInSec, state any) {
	if !r.warmUpDone && t >= r.config.WarmUpDuration {
		r.engine.AdvanceTo(r.config.WarmUpDuration)

		for _, o := range r.observers {
			o.WarmUpEnded(r.config.WarmUpDuration, state)
		}

		r.warmUpDone = true
	}

	for r.nextSnap < r.config.SnapCount {
		end := r.config.WarmUpDuration +
			r.config.SnapDuration*sim.VTimeInSec(r.nextSnap+1)
		if t < end {
			break
		}

		r.engine.AdvanceTo(end)

		snap := Snap{
			Index: r.nextSnap,
			Start: end - r.config.SnapDuration,
			End:   end,
		}

		if m, ok := r.model.(SnapObserver); ok {
			m.OnSnap(state, r.nextSnap)
		}

		for _, o := range r.observers {
			o.SnapTaken(snap, state)
		}

		r.nextSnap++
		r.result.SnapsRecorded++
	}
}

func (r *Runner) finish(state any) *RunResult {
	r.result.EndTime = r.engine.CurrentTime()
	r.result.EventsDispatched = r.engine.EventCount()

	if r.started {
		for _, o := range r.observers {
			o.RunEnded(r.result.EndTime, &r.result, state)
		}
	}

	return &r.result
}

func (r *Runner) setState(s runState) {
	r.stateLock.Lock()
	r.state = s
	r.stateLock.Unlock()
}
