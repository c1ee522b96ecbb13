package trainer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"toy-lr/internal/dataset"
	"toy-lr/internal/device"
	"toy-lr/internal/log"
	"toy-lr/internal/metrics"
	"toy-lr/internal/model"
)

// RunConfig captures the knobs required by a full training run.
type RunConfig struct {
	NumFeatures  int
	NumSamples   int
	TestSize     int
	Epochs       int
	LearningRate float64
	Seed         int64
	Device       string
	Output       io.Writer
	OnEpoch      func(metrics.Epoch)
}

// Result is the outcome of Run.
type Result struct {
	Trace        *metrics.Trace
	Params       *model.Params
	TestCorrect  int
	TestAccuracy float64
}

// Run generates the synthetic dataset, splits and standardizes it, trains on
// the training partition and scores the test partition.
func Run(cfg RunConfig) (*Result, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	dev, err := device.Resolve(cfg.Device)
	if err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Info("resolved device", dev.Fields()...)

	rng := dataset.NewRandomGenerator(cfg.Seed)
	data, err := dataset.Synthetic(rng, cfg.NumSamples, cfg.NumFeatures)
	if err != nil {
		return nil, errors.Trace(err)
	}
	train, test, err := dataset.Split(data, cfg.TestSize, rng)
	if err != nil {
		return nil, errors.Trace(err)
	}
	train, test, stats, err := dataset.Standardize(train, test)
	if err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Info("prepared dataset",
		zap.Int("train", train.Len()),
		zap.Int("test", test.Len()),
		zap.Float64s("mean", stats.Mean),
		zap.Float64s("std", stats.Std))

	opts := []Option{WithOutput(cfg.Output)}
	if cfg.OnEpoch != nil {
		opts = append(opts, WithEpochHook(cfg.OnEpoch))
	}
	t := New(cfg.NumFeatures, dev, opts...)
	trace, err := t.Train(train.Features, train.Labels, cfg.Epochs, cfg.LearningRate)
	if err != nil {
		return nil, errors.Trace(err)
	}

	log.Logger().Debug("trained parameters", zap.Stringer("params", t.Params))

	correct, accuracy := t.Evaluate(test)
	log.Logger().Info("evaluated test set",
		zap.Int("correct", correct),
		zap.Int("total", test.Len()),
		zap.Float64("accuracy", accuracy))

	WriteParams(cfg.Output, t.Params)
	return &Result{
		Trace:        trace,
		Params:       t.Params,
		TestCorrect:  correct,
		TestAccuracy: accuracy,
	}, nil
}

// WriteParams prints the model parameters after training.
func WriteParams(w io.Writer, p *model.Params) {
	weights := lo.Map(p.Weights.RawVector().Data, func(v float64, _ int) string {
		return fmt.Sprintf("%.4f", v)
	})
	fmt.Fprintf(w, "\nModel parameters:\n")
	fmt.Fprintf(w, "  Weights: [%s]\n", strings.Join(weights, ", "))
	fmt.Fprintf(w, "  Bias: %.4f\n", p.Bias)
}
