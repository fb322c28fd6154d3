package analysis

import (
	"github.com/Facsimiler/facsimile/sim"
	"github.com/Facsimiler/facsimile/simulation"
)

// A Collector gathers accumulators and connects them to the run's
// measurement boundaries. It discards everything at warm-up end, and at
// each snap boundary reports the combined metrics through a Reporter and
// then resets the per-snap accumulators.
//
// Accumulators registered as cumulative survive snap boundaries and keep
// integrating until the run ends.
type Collector struct {
	reporter simulation.Reporter

	perSnap    []Accumulator
	cumulative []Accumulator
}

// NewCollector creates a Collector reporting through the given Reporter.
func NewCollector(reporter simulation.Reporter) *Collector {
	return &Collector{reporter: reporter}
}

// Register adds an accumulator that resets after every snap.
func (c *Collector) Register(a Accumulator) {
	c.perSnap = append(c.perSnap, a)
}

// RegisterCumulative adds an accumulator that resets only at warm-up end.
func (c *Collector) RegisterCumulative(a Accumulator) {
	c.cumulative = append(c.cumulative, a)
}

// RunStarted implements simulation.Observer.
func (c *Collector) RunStarted(_ sim.VTimeInSec, _ any) {}

// WarmUpEnded discards every statistic gathered during warm-up.
func (c *Collector) WarmUpEnded(now sim.VTimeInSec, _ any) {
	for _, a := range c.perSnap {
		a.Reset(now)
	}
	for _, a := range c.cumulative {
		a.Reset(now)
	}
}

// SnapTaken reports the metrics of the completed window, then resets the
// per-snap accumulators.
func (c *Collector) SnapTaken(snap simulation.Snap, _ any) {
	metrics := make(map[string]float64)
	for _, a := range c.perSnap {
		for name, value := range a.Metrics() {
			metrics[name] = value
		}
	}
	for _, a := range c.cumulative {
		for name, value := range a.Metrics() {
			metrics[name] = value
		}
	}

	c.reporter.Record(snap.Index, metrics)

	for _, a := range c.perSnap {
		a.Reset(snap.End)
	}
}

// RunEnded implements simulation.Observer.
func (c *Collector) RunEnded(_ sim.VTimeInSec, _ *simulation.RunResult, _ any) {
}
