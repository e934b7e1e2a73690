// Package util provides helpers for generating test and benchmark data.
package util

import (
	"math/rand"

	"github.com/hupe1980/vecx"
)

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

// GenerateRandomVecs generates num random float32 Vecs of the given length.
func (r *RNG) GenerateRandomVecs(num int, length int) []vecx.Vec[float32] {
	vecs := make([]vecx.Vec[float32], num)
	for i := range vecs {
		elems := make([]float32, length)
		for j := range elems {
			elems[j] = r.rand.Float32()
		}
		vecs[i] = vecx.FromSlice(elems)
	}

	return vecs
}

// GenerateRandomByteVecs generates num random uint8 Vecs of the given length,
// with each element drawn from [0, valueRange). Small ranges produce many
// duplicates, which is useful for exercising deduplication.
func (r *RNG) GenerateRandomByteVecs(num int, length int, valueRange int) []vecx.Vec[uint8] {
	if valueRange <= 0 || valueRange > 256 {
		valueRange = 256
	}

	vecs := make([]vecx.Vec[uint8], num)
	for i := range vecs {
		elems := make([]uint8, length)
		for j := range elems {
			elems[j] = uint8(r.rand.Intn(valueRange))
		}
		vecs[i] = vecx.FromSlice(elems)
	}

	return vecs
}
