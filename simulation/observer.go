package simulation

import (
	"github.com/Facsimiler/facsimile/sim"
)

//go:generate mockgen -destination "mock_simulation_test.go" -self_package=github.com/Facsimiler/facsimile/simulation -package simulation -write_package_comment=false github.com/Facsimiler/facsimile/simulation Observer,Reporter,LogSink

// A Snap describes one measurement window.
type Snap struct {
	// Index is the zero-based position of the window.
	Index int

	// Start and End delimit the simulated interval the window covers.
	Start sim.VTimeInSec
	End   sim.VTimeInSec
}

// An Observer is notified at the measurement boundaries of a run: run
// start, warm-up end, each snap boundary, and run end. Observers get
// read-only access to the clock value and the model state; they must not
// mutate the model or schedule events.
type Observer interface {
	// RunStarted fires once, after the model seeded the future-event set
	// and before the first event dispatches.
	RunStarted(now sim.VTimeInSec, state any)

	// WarmUpEnded fires when the clock reaches the warm-up duration, before
	// any event due exactly at that instant. Statistics accumulated so far
	// must be discarded here.
	WarmUpEnded(now sim.VTimeInSec, state any)

	// SnapTaken fires at the end of each measurement window, before any
	// event due exactly at the boundary. Per-snap statistics reset after
	// recording.
	SnapTaken(snap Snap, state any)

	// RunEnded fires once, after the last event dispatched.
	RunEnded(now sim.VTimeInSec, result *RunResult, state any)
}

// A Reporter records the metrics of one measurement window.
type Reporter interface {
	Record(snapIndex int, metrics map[string]float64)
}
