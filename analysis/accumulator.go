// Package analysis accumulates statistics over measurement windows.
package analysis

import (
	"math"

	"github.com/Facsimiler/facsimile/sim"
)

// An Accumulator gathers one statistic during a measurement window. Reset
// discards everything gathered so far; a Collector resets all of its
// accumulators at warm-up end and per-snap accumulators after each window.
type Accumulator interface {
	Name() string
	Reset(now sim.VTimeInSec)
	Metrics() map[string]float64
}

// A Counter counts occurrences of something, such as completed jobs.
type Counter struct {
	name  string
	count float64
}

// NewCounter creates a Counter with the given metric name.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Name returns the metric name.
func (c *Counter) Name() string {
	return c.name
}

// Add increases the count by x.
func (c *Counter) Add(x float64) {
	c.count += x
}

// Count returns the accumulated count.
func (c *Counter) Count() float64 {
	return c.count
}

// Reset discards the count.
func (c *Counter) Reset(_ sim.VTimeInSec) {
	c.count = 0
}

// Metrics reports the count under the accumulator name.
func (c *Counter) Metrics() map[string]float64 {
	return map[string]float64{c.name: c.count}
}

// A Tally tracks the mean, variance, and extremes of individual
// observations, such as waiting times. The running variance uses Welford's
// update to stay stable over long runs.
type Tally struct {
	name string

	count float64
	mean  float64
	m2    float64
	min   float64
	max   float64
}

// NewTally creates a Tally with the given metric name.
func NewTally(name string) *Tally {
	t := &Tally{name: name}
	t.Reset(0)
	return t
}

// Name returns the metric name.
func (t *Tally) Name() string {
	return t.name
}

// Observe records one observation.
func (t *Tally) Observe(x float64) {
	t.count++

	delta := x - t.mean
	t.mean += delta / t.count
	t.m2 += delta * (x - t.mean)

	if x < t.min {
		t.min = x
	}
	if x > t.max {
		t.max = x
	}
}

// Count returns the number of observations.
func (t *Tally) Count() float64 {
	return t.count
}

// Mean returns the mean of the observations, or 0 without observations.
func (t *Tally) Mean() float64 {
	if t.count == 0 {
		return 0
	}
	return t.mean
}

// Variance returns the population variance of the observations.
func (t *Tally) Variance() float64 {
	if t.count == 0 {
		return 0
	}
	return t.m2 / t.count
}

// Min returns the smallest observation, or 0 without observations.
func (t *Tally) Min() float64 {
	if t.count == 0 {
		return 0
	}
	return t.min
}

// Max returns the largest observation, or 0 without observations.
func (t *Tally) Max() float64 {
	if t.count == 0 {
		return 0
	}
	return t.max
}

// Reset discards all observations.
func (t *Tally) Reset(_ sim.VTimeInSec) {
	t.count = 0
	t.mean = 0
	t.m2 = 0
	t.min = math.Inf(1)
	t.max = math.Inf(-1)
}

// Metrics reports count, mean, variance, min, and max under suffixed names.
func (t *Tally) Metrics() map[string]float64 {
	return map[string]float64{
		t.name + "_count": t.Count(),
		t.name + "_mean":  t.Mean(),
		t.name + "_var":   t.Variance(),
		t.name + "_min":   t.Min(),
		t.name + "_max":   t.Max(),
	}
}

// A Level integrates a piecewise-constant quantity over simulated time,
// such as a queue length, and reports its time average.
type Level struct {
	name       string
	timeTeller sim.TimeTeller

	level       float64
	integral    float64
	lastChanged sim.VTimeInSec
	resetAt     sim.VTimeInSec
}

// NewLevel creates a Level with the given metric name. The time teller
// provides the clock the integration runs against.
func NewLevel(name string, timeTeller sim.TimeTeller) *Level {
	return &Level{
		name:       name,
		timeTeller: timeTeller,
	}
}

// Name returns the metric name.
func (l *Level) Name() string {
	return l.name
}

// Set records that the quantity changed to v at the current time.
func (l *Level) Set(v float64) {
	l.integrate()
	l.level = v
}

// Adjust records that the quantity changed by d at the current time.
func (l *Level) Adjust(d float64) {
	l.integrate()
	l.level += d
}

// Current returns the quantity as of the last change.
func (l *Level) Current() float64 {
	return l.level
}

// TimeAverage returns the time average of the quantity since the last
// reset.
func (l *Level) TimeAverage() float64 {
	l.integrate()

	duration := float64(l.timeTeller.CurrentTime() - l.resetAt)
	if duration == 0 {
		return l.level
	}

	return l.integral / duration
}

// Reset restarts the integration at now, keeping the current level.
func (l *Level) Reset(now sim.VTimeInSec) {
	l.integral = 0
	l.lastChanged = now
	l.resetAt = now
}

// Metrics reports the time average and the current level.
func (l *Level) Metrics() map[string]float64 {
	return map[string]float64{
		l.name + "_time_avg": l.TimeAverage(),
		l.name + "_current":  l.level,
	}
}

func (l *Level) integrate() {
	now := l.timeTeller.CurrentTime()
	l.integral += l.level * float64(now-l.lastChanged)
	l.lastChanged = now
}
