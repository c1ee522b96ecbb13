package metrics

import (
	"math"
	"time"

	"github.com/samber/lo"
)

// Epoch is one record of the training trace.
type Epoch struct {
	Epoch    int
	Correct  int
	Cost     float64
	Duration time.Duration
}

// Trace is the append-only per-epoch history of a training run.
type Trace struct {
	epochs []Epoch
}

// Append adds the record for the next epoch.
func (t *Trace) Append(e Epoch) {
	t.epochs = append(t.epochs, e)
}

// Len returns the number of recorded epochs.
func (t *Trace) Len() int {
	return len(t.epochs)
}

// Epochs returns a copy of the records.
func (t *Trace) Epochs() []Epoch {
	return append([]Epoch(nil), t.epochs...)
}

// Costs returns the cost of every epoch in order.
func (t *Trace) Costs() []float64 {
	return lo.Map(t.epochs, func(e Epoch, _ int) float64 { return e.Cost })
}

// Last returns the most recent record.
func (t *Trace) Last() (Epoch, bool) {
	if len(t.epochs) == 0 {
		return Epoch{}, false
	}
	return t.epochs[len(t.epochs)-1], true
}

// NonIncreasingRatio returns the fraction of consecutive epochs whose cost did not go up.
func (t *Trace) NonIncreasingRatio() float64 {
	if len(t.epochs) < 2 {
		return 1
	}
	steps := 0
	for i := 1; i < len(t.epochs); i++ {
		if t.epochs[i].Cost <= t.epochs[i-1].Cost {
			steps++
		}
	}
	return float64(steps) / float64(len(t.epochs)-1)
}

// Finite reports whether every recorded cost is a finite number.
func (t *Trace) Finite() bool {
	return lo.EveryBy(t.epochs, func(e Epoch) bool {
		return !math.IsNaN(e.Cost) && !math.IsInf(e.Cost, 0)
	})
}

// Window accumulates timing stats across multiple epochs.
type Window struct {
	samples int
	compute time.Duration
	steps   int
	last    Epoch
}

// Record adds a new measurement to the window.
func (w *Window) Record(numSamples int, e Epoch) {
	w.samples += numSamples
	w.compute += e.Duration
	w.steps++
	w.last = e
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.steps > 0 {
		snap.AvgComputeMS = (w.compute.Seconds() * 1000) / float64(w.steps)
	}
	snap.LastCost = w.last.Cost

	w.samples = 0
	w.compute = 0
	w.steps = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	SamplesPerSec float64
	AvgComputeMS  float64
	LastCost      float64
}
