package dataset

import (
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Standardizer rescales each feature column to zero mean and unit variance
// using statistics fitted once, on training data only.
type Standardizer struct {
	Mean []float64
	Std  []float64
}

// FitStandardizer computes per-column mean and population standard deviation.
func FitStandardizer(x *mat.Dense) *Standardizer {
	_, c := x.Dims()
	s := &Standardizer{Mean: make([]float64, c), Std: make([]float64, c)}
	for j := 0; j < c; j++ {
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(mat.Col(nil, j, x), nil)
	}
	return s
}

// Transform returns a standardized copy of x. Constant columns are only centered.
func (s *Standardizer) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, nil
	}
	r, c := x.Dims()
	if c != len(s.Mean) {
		return nil, errors.Errorf("standardizer fitted on %d features, got %d", len(s.Mean), c)
	}
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		std := s.Std[j]
		if std == 0 {
			std = 1
		}
		return (v - s.Mean[j]) / std
	}, x)
	return out, nil
}

// Standardize fits on train and returns both partitions transformed with the
// same statistics. The inputs are left untouched.
func Standardize(train, test *Dataset) (*Dataset, *Dataset, *Standardizer, error) {
	s := FitStandardizer(train.Features)
	trainFeatures, err := s.Transform(train.Features)
	if err != nil {
		return nil, nil, nil, errors.Trace(err)
	}
	testFeatures, err := s.Transform(test.Features)
	if err != nil {
		return nil, nil, nil, errors.Trace(err)
	}
	return &Dataset{Features: trainFeatures, Labels: train.Labels},
		&Dataset{Features: testFeatures, Labels: test.Labels}, s, nil
}
