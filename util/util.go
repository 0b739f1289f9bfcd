// Package util provides seeded random data generation for tests and
// benchmarks.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateInts generates num random ints in [0, bound).
func (r *RNG) GenerateInts(num int, bound int) []int {
	values := make([]int, num)
	for i := range values {
		values[i] = r.rand.Intn(bound)
	}

	return values
}

// GenerateRecords generates num random byte records of stride bytes each.
func (r *RNG) GenerateRecords(num int, stride int) [][]byte {
	records := make([][]byte, num)
	for i := range records {
		records[i] = make([]byte, stride)
		r.rand.Read(records[i])
	}

	return records
}
