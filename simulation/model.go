package simulation

import (
	"github.com/Facsimiler/facsimile/sim"
)

// A Model is the user-supplied part of a simulation. The run controller
// owns the model state for the duration of a run and lends it, one action
// at a time, to the dispatching event.
type Model interface {
	// ModelState returns the value the engine passes to every action. The
	// run controller calls it once, at run start.
	ModelState() any

	// Init seeds the future-event set. Events due at time 0 are legal.
	Init(state any, scheduler *sim.Scheduler) error
}

// A SnapObserver is a Model that wants a callback at the end of each
// measurement window, before per-snap statistics reset.
type SnapObserver interface {
	OnSnap(state any, snapIndex int)
}
