package utils

import (
	"math/rand/v2"
	"time"
)

// RandSource provides independent uniform draws from [0, 1). Grid
// construction consumes one draw per cell, so tests can substitute a
// deterministic source.
type RandSource interface {
	Float64() float64
}

// NewRNG creates a deterministic PCG-backed source from the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// SeedOrNow resolves the configured seed, substituting the current time for
// non-positive values.
func SeedOrNow(seed int64) int64 {
	if seed > 0 {
		return seed
	}
	return time.Now().UnixNano()
}
