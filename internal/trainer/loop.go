package trainer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"toy-lr/internal/dataset"
	"toy-lr/internal/device"
	"toy-lr/internal/log"
	"toy-lr/internal/metrics"
	"toy-lr/internal/model"
)

// Trainer owns the parameters of a logistic regression model and fits them
// by full-batch gradient descent.
type Trainer struct {
	Params *model.Params
	Device device.Device

	out     io.Writer
	onEpoch func(metrics.Epoch)
}

// Option customizes a Trainer.
type Option func(*Trainer)

// WithOutput sets where per-epoch report lines are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Trainer) {
		t.out = w
	}
}

// WithEpochHook registers fn to be called after every epoch.
func WithEpochHook(fn func(metrics.Epoch)) Option {
	return func(t *Trainer) {
		t.onEpoch = fn
	}
}

// New creates a Trainer with zero-initialized parameters.
func New(numFeatures int, dev device.Device, opts ...Option) *Trainer {
	t := &Trainer{
		Params: model.NewParams(numFeatures),
		Device: dev,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Train runs numEpochs epochs over the full dataset. Each epoch predicts,
// counts correct predictions, steps the parameters against the gradient and
// records the mean cost measured after the step.
func (t *Trainer) Train(x *mat.Dense, y *mat.VecDense, numEpochs int, learningRate float64) (*metrics.Trace, error) {
	if numEpochs <= 0 {
		return nil, errors.NotValidf("number of epochs %d", numEpochs)
	}
	if learningRate <= 0 {
		return nil, errors.NotValidf("learning rate %v", learningRate)
	}
	if x == nil || y == nil {
		return nil, errors.New("trainer: empty training data")
	}
	n, c := x.Dims()
	if n != y.Len() {
		return nil, errors.Errorf("trainer: %d rows but %d labels", n, y.Len())
	}
	if c != t.Params.NumFeatures() {
		return nil, errors.Errorf("trainer: %d features but %d weights", c, t.Params.NumFeatures())
	}

	trace := &metrics.Trace{}
	var window metrics.Window
	for e := 1; e <= numEpochs; e++ {
		start := time.Now()
		probas := model.Predict(t.Params, x)
		correct := model.CountCorrect(y, probas)

		gradW, gradB := model.Gradients(x, y, probas)
		t.Params.Update(gradW, gradB, learningRate)

		cost := model.Cost(y, model.Predict(t.Params, x)) / float64(n)
		record := metrics.Epoch{Epoch: e, Correct: correct, Cost: cost, Duration: time.Since(start)}
		trace.Append(record)
		window.Record(n, record)

		fmt.Fprintf(t.out, "Epoch: %03d | Train ACC: %.3f | Cost: %.3f\n", e, float64(correct), cost)
		log.Logger().Debug("epoch",
			zap.Int("epoch", e),
			zap.Int("correct", correct),
			zap.Float64("cost", cost),
			zap.Duration("duration", record.Duration))
		if t.onEpoch != nil {
			t.onEpoch(record)
		}
	}

	snap := window.Snapshot()
	log.Logger().Info("training finished",
		zap.Int("epochs", numEpochs),
		zap.Float64("samples_per_sec", snap.SamplesPerSec),
		zap.Float64("avg_compute_ms", snap.AvgComputeMS),
		zap.Float64("cost", snap.LastCost))
	return trace, nil
}

// Evaluate scores the current parameters on d.
func (t *Trainer) Evaluate(d *dataset.Dataset) (correct int, accuracy float64) {
	if d.Len() == 0 {
		return 0, 0
	}
	correct = model.CountCorrect(d.Labels, model.Predict(t.Params, d.Features))
	return correct, float64(correct) / float64(d.Len())
}
