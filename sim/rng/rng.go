// Package rng provides named, seeded pseudo-random substreams for
// simulation models.
//
// All streams of one run derive from a single master seed. A stream's seed
// is the SplitMix64 mix of the master seed and a stable hash of the stream
// name, so adding a new named stream never perturbs the values produced by
// existing ones. Streams are cached per name: asking for the same name
// twice returns the same stream.
//
// Sources and streams are not safe for concurrent use. The engine dispatches
// events on a single goroutine, which is the only place streams should be
// consumed.
package rng

import (
	"hash/fnv"
	"math/rand/v2"
)

// A Source derives and caches the named streams of one simulation run.
type Source struct {
	masterSeed uint64
	streams    map[string]*Stream
}

// NewSource creates a Source from the run's master seed. Equal seeds yield
// equal streams.
func NewSource(masterSeed uint64) *Source {
	return &Source{
		masterSeed: masterSeed,
		streams:    make(map[string]*Stream),
	}
}

// MasterSeed returns the seed the source was created with.
func (s *Source) MasterSeed() uint64 {
	return s.masterSeed
}

// Stream returns the stream with the given name, creating it on first use.
func (s *Source) Stream(name string) *Stream {
	if stream, ok := s.streams[name]; ok {
		return stream
	}

	seed := splitMix64(s.masterSeed ^ stableHash(name))
	stream := &Stream{
		name: name,
		rand: rand.New(rand.NewPCG(seed, splitMix64(seed))),
	}
	s.streams[name] = stream

	return stream
}

// A Stream is an independent pseudo-random substream. Consuming values from
// one stream never alters the values produced by another.
type Stream struct {
	name string
	rand *rand.Rand
}

// Name returns the name the stream is keyed by.
func (s *Stream) Name() string {
	return s.name
}

// Uint64 returns the next 64-bit value of the stream.
func (s *Stream) Uint64() uint64 {
	return s.rand.Uint64()
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.rand.Float64()
}

// IntN returns a uniform value in [0, n).
func (s *Stream) IntN(n int) int {
	return s.rand.IntN(n)
}

// ExpFloat64 returns an exponentially distributed value with rate 1.
func (s *Stream) ExpFloat64() float64 {
	return s.rand.ExpFloat64()
}

// NormFloat64 returns a standard normally distributed value.
func (s *Stream) NormFloat64() float64 {
	return s.rand.NormFloat64()
}

// stableHash computes a 64-bit FNV-1a hash of the stream name. The hash is
// part of the reproducibility contract and must not change across releases.
func stableHash(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// splitMix64 is the finalizer of the SplitMix64 generator. It spreads the
// combined seed so that related names still seed unrelated streams.
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
