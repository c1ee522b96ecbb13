package model

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Threshold separates the two classes on the probability scale.
const Threshold = 0.5

// Sigmoid is the logistic function 1/(1+e^-z).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Predict returns σ(x·w + b) for every row of x.
func Predict(p *Params, x mat.Matrix) *mat.VecDense {
	r, _ := x.Dims()
	probas := mat.NewVecDense(r, nil)
	probas.MulVec(x, p.Weights)
	for i := 0; i < r; i++ {
		probas.SetVec(i, Sigmoid(probas.AtVec(i)+p.Bias))
	}
	return probas
}

// Gradients returns the gradient of the cross-entropy with respect to the
// weights, -xᵀ(y-p), and to the bias, -Σ(y-p).
func Gradients(x mat.Matrix, y, probas mat.Vector) (*mat.VecDense, float64) {
	e := mat.NewVecDense(y.Len(), nil)
	e.SubVec(y, probas)
	_, c := x.Dims()
	gradW := mat.NewVecDense(c, nil)
	gradW.MulVec(x.T(), e)
	gradW.ScaleVec(-1, gradW)
	return gradW, -floats.Sum(e.RawVector().Data)
}

// Cost is the summed binary cross-entropy -[yᵀlog(p) + (1-y)ᵀlog(1-p)].
// Probabilities of exactly 0 or 1 yield Inf or NaN.
func Cost(y, probas mat.Vector) float64 {
	var cost float64
	for i := 0; i < y.Len(); i++ {
		label, proba := y.AtVec(i), probas.AtVec(i)
		cost -= label*math.Log(proba) + (1-label)*math.Log(1-proba)
	}
	return cost
}

// Classify thresholds probabilities into 0/1 predictions.
func Classify(probas mat.Vector) []float64 {
	return lo.Map(lo.Range(probas.Len()), func(i int, _ int) float64 {
		if probas.AtVec(i) > Threshold {
			return 1
		}
		return 0
	})
}

// CountCorrect counts predictions that match y.
func CountCorrect(y, probas mat.Vector) int {
	preds := Classify(probas)
	return lo.CountBy(lo.Range(y.Len()), func(i int) bool {
		return preds[i] == y.AtVec(i)
	})
}
