// Package model implements binary logistic regression as plain parameters
// plus free functions for the forward pass, gradients and updates.
package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Params are the weights and bias of a logistic regression model.
type Params struct {
	Weights *mat.VecDense
	Bias    float64
}

// NewParams returns zero-initialized parameters for numFeatures inputs.
func NewParams(numFeatures int) *Params {
	return &Params{Weights: mat.NewVecDense(numFeatures, nil)}
}

// NumFeatures returns the length of the weight vector.
func (p *Params) NumFeatures() int {
	return p.Weights.Len()
}

// Update takes one gradient descent step in place.
func (p *Params) Update(gradW mat.Vector, gradB, learningRate float64) {
	p.Weights.AddScaledVec(p.Weights, -learningRate, gradW)
	p.Bias -= learningRate * gradB
}

func (p *Params) String() string {
	return fmt.Sprintf("weights=%v bias=%v", mat.Formatted(p.Weights.T(), mat.Squeeze()), p.Bias)
}
