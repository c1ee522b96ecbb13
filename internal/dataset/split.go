package dataset

import (
	"github.com/juju/errors"
)

// Split shuffles the sample indices with rng and takes the first testSize of
// them as the test partition and the remainder as the training partition.
func Split(d *Dataset, testSize int, rng RandomGenerator) (train, test *Dataset, err error) {
	n := d.Len()
	if testSize < 0 || testSize >= n {
		return nil, nil, errors.NotValidf("test size %d for %d samples", testSize, n)
	}
	indices := rng.Permutation(n)
	return d.Subset(indices[testSize:]), d.Subset(indices[:testSize]), nil
}
