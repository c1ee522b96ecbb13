package dataset

import (
	"math/rand"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
)

// RandomGenerator is the owned source of randomness for data generation and shuffling.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a RandomGenerator.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

// UniformMatrix makes a row×col matrix filled with uniform random floats in [low, high).
func (rng RandomGenerator) UniformMatrix(row, col int, low, high float64) *mat.Dense {
	data := make([]float64, row*col)
	scale := high - low
	for i := range data {
		data[i] = rng.Float64()*scale + low
	}
	return mat.NewDense(row, col, data)
}

// BinaryVector makes a vector of random 0/1 values.
func (rng RandomGenerator) BinaryVector(size int) *mat.VecDense {
	data := make([]float64, size)
	for i := range data {
		data[i] = float64(rng.Intn(2))
	}
	return mat.NewVecDense(size, data)
}

// Permutation returns a shuffled copy of 0..n-1.
func (rng RandomGenerator) Permutation(n int) []int {
	indices := lo.Range(n)
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices
}
