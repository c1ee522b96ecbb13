package dataset

import (
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset is an ordered set of (features, label) pairs. Labels are 0 or 1.
type Dataset struct {
	Features *mat.Dense
	Labels   *mat.VecDense
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	if d == nil || d.Labels == nil {
		return 0
	}
	return d.Labels.Len()
}

// NumFeatures returns the feature dimensionality.
func (d *Dataset) NumFeatures() int {
	if d == nil || d.Features == nil {
		return 0
	}
	_, c := d.Features.Dims()
	return c
}

// Synthetic draws numSamples feature rows uniformly from [0, 1) and a random
// binary label for each, in that order from rng.
func Synthetic(rng RandomGenerator, numSamples, numFeatures int) (*Dataset, error) {
	if numSamples <= 0 {
		return nil, errors.NotValidf("number of samples %d", numSamples)
	}
	if numFeatures <= 0 {
		return nil, errors.NotValidf("number of features %d", numFeatures)
	}
	return &Dataset{
		Features: rng.UniformMatrix(numSamples, numFeatures, 0, 1),
		Labels:   rng.BinaryVector(numSamples),
	}, nil
}

// Subset copies the samples at indices into a new Dataset.
func (d *Dataset) Subset(indices []int) *Dataset {
	if len(indices) == 0 {
		return &Dataset{}
	}
	features := mat.NewDense(len(indices), d.NumFeatures(), nil)
	labels := mat.NewVecDense(len(indices), nil)
	row := make([]float64, d.NumFeatures())
	for i, index := range indices {
		features.SetRow(i, mat.Row(row, index, d.Features))
		labels.SetVec(i, d.Labels.AtVec(index))
	}
	return &Dataset{Features: features, Labels: labels}
}
