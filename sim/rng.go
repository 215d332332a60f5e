package sim

import (
	"hash/fnv"
	"math/rand"
)

// Stream name constants, one per variate class. Keeping each class on its
// own stream preserves common random numbers across policy runs: changing
// (s,S) never perturbs the demand or lead-time sequences.
const (
	StreamInterdemand = "interdemand"
	StreamDemandSize  = "demand_size"
	StreamLeadTime    = "lead_time"
	StreamHorizon     = "horizon"
)

// PartitionedRNG provides deterministic, isolated RNG streams per variate
// class, all derived from a single master seed.
//
// Derivation: streamSeed = masterSeed XOR fnv1a64(streamName). The hash
// makes derivation order-independent: streams can be created lazily in any
// order and still draw the same sequences.
//
// Not thread-safe; the engine is strictly single-threaded.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// ForStream returns the RNG for the named stream, creating it on first use.
// The same name always returns the same *rand.Rand instance.
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.streams[name] = rng
	return rng
}

// Seed returns the master seed used to create this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
