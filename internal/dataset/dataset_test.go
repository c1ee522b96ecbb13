package dataset

import (
	"math"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestSyntheticDeterministic(t *testing.T) {
	d1, err := Synthetic(NewRandomGenerator(123), 100, 2)
	require.NoError(t, err)
	d2, err := Synthetic(NewRandomGenerator(123), 100, 2)
	require.NoError(t, err)

	assert.True(t, mat.Equal(d1.Features, d2.Features))
	assert.True(t, mat.Equal(d1.Labels, d2.Labels))
	assert.Equal(t, 100, d1.Len())
	assert.Equal(t, 2, d1.NumFeatures())

	d3, err := Synthetic(NewRandomGenerator(124), 100, 2)
	require.NoError(t, err)
	assert.False(t, mat.Equal(d1.Features, d3.Features))
}

func TestSyntheticRanges(t *testing.T) {
	d, err := Synthetic(NewRandomGenerator(0), 500, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mat.Min(d.Features), 0.0)
	assert.Less(t, mat.Max(d.Features), 1.0)
	for i := 0; i < d.Len(); i++ {
		label := d.Labels.AtVec(i)
		assert.True(t, label == 0 || label == 1, "label %v", label)
	}
}

func TestSyntheticInvalid(t *testing.T) {
	_, err := Synthetic(NewRandomGenerator(0), 0, 2)
	assert.Error(t, err)
	_, err = Synthetic(NewRandomGenerator(0), 10, 0)
	assert.Error(t, err)
}

func TestPermutation(t *testing.T) {
	p1 := NewRandomGenerator(7).Permutation(50)
	p2 := NewRandomGenerator(7).Permutation(50)
	assert.Equal(t, p1, p2)

	sorted := append([]int(nil), p1...)
	sort.Ints(sorted)
	assert.Equal(t, lo.Range(50), sorted)
}

func TestSplit(t *testing.T) {
	rng := NewRandomGenerator(123)
	d, err := Synthetic(rng, 100, 2)
	require.NoError(t, err)
	train, test, err := Split(d, 25, rng)
	require.NoError(t, err)
	assert.Equal(t, 75, train.Len())
	assert.Equal(t, 25, test.Len())

	// every original row appears exactly once across both partitions
	seen := make(map[[2]float64]int)
	for _, part := range []*Dataset{train, test} {
		for i := 0; i < part.Len(); i++ {
			seen[[2]float64{part.Features.At(i, 0), part.Features.At(i, 1)}]++
		}
	}
	assert.Len(t, seen, 100)
	for i := 0; i < d.Len(); i++ {
		assert.Equal(t, 1, seen[[2]float64{d.Features.At(i, 0), d.Features.At(i, 1)}])
	}
}

func TestSplitInvalid(t *testing.T) {
	rng := NewRandomGenerator(0)
	d, err := Synthetic(rng, 10, 2)
	require.NoError(t, err)
	_, _, err = Split(d, 10, rng)
	assert.Error(t, err)
	_, _, err = Split(d, -1, rng)
	assert.Error(t, err)

	train, test, err := Split(d, 0, rng)
	require.NoError(t, err)
	assert.Equal(t, 10, train.Len())
	assert.Equal(t, 0, test.Len())
}

func TestSubsetKeepsPairs(t *testing.T) {
	d := &Dataset{
		Features: mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}),
		Labels:   mat.NewVecDense(3, []float64{0, 1, 0}),
	}
	sub := d.Subset([]int{2, 1})
	assert.Equal(t, []float64{5, 6}, mat.Row(nil, 0, sub.Features))
	assert.Equal(t, []float64{3, 4}, mat.Row(nil, 1, sub.Features))
	assert.Equal(t, []float64{0, 1}, sub.Labels.RawVector().Data)
}

func TestStandardize(t *testing.T) {
	rng := NewRandomGenerator(123)
	d, err := Synthetic(rng, 100, 2)
	require.NoError(t, err)
	train, test, err := Split(d, 25, rng)
	require.NoError(t, err)

	normTrain, normTest, s, err := Standardize(train, test)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		mean, std := stat.PopMeanStdDev(mat.Col(nil, j, normTrain.Features), nil)
		assert.InDelta(t, 0, mean, 1e-9)
		assert.InDelta(t, 1, std, 1e-9)

		// test partition uses the training statistics
		raw := test.Features.At(0, j)
		assert.InDelta(t, (raw-s.Mean[j])/s.Std[j], normTest.Features.At(0, j), 1e-12)
	}
	// inputs are untouched
	assert.False(t, mat.Equal(train.Features, normTrain.Features))
	assert.Same(t, train.Labels, normTrain.Labels)
}

func TestStandardizeConstantColumn(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, 5, 2, 5, 3, 5})
	s := FitStandardizer(x)
	assert.Equal(t, 0.0, s.Std[1])
	out, err := s.Transform(x)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.False(t, math.IsNaN(out.At(i, 1)))
		assert.Equal(t, 0.0, out.At(i, 1))
	}

	_, err = s.Transform(mat.NewDense(1, 3, nil))
	assert.Error(t, err)
}
