// Package id assigns event identifiers within a simulation run.
package id

import (
	"sync/atomic"
)

// A Generator hands out identifiers that strictly increase in allocation
// order. Each run owns its own Generator, so IDs restart from 1 between
// runs and two events created in the same run never share an ID.
type Generator interface {
	Generate() int64
}

// NewGenerator returns the ID generator used in the current simulation run.
func NewGenerator() Generator {
	return &sequentialGenerator{}
}

type sequentialGenerator struct {
	nextID int64
}

func (g *sequentialGenerator) Generate() int64 {
	return atomic.AddInt64(&g.nextID, 1)
}
