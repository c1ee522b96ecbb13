package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(64, Epoch{Epoch: 1, Duration: 20 * time.Millisecond, Cost: 1.2})
	w.Record(64, Epoch{Epoch: 2, Duration: 40 * time.Millisecond, Cost: 0.8})
	snap := w.Snapshot()
	assert.InDelta(t, 2133.3333, snap.SamplesPerSec, 1)
	assert.InDelta(t, 30, snap.AvgComputeMS, 1e-9)
	assert.Equal(t, 0.8, snap.LastCost)
	assert.Zero(t, w.samples)
	assert.Zero(t, w.steps)
}

func TestTrace(t *testing.T) {
	var trace Trace
	_, ok := trace.Last()
	assert.False(t, ok)
	assert.Equal(t, 1.0, trace.NonIncreasingRatio())

	for i, cost := range []float64{0.69, 0.6, 0.62, 0.5, 0.5} {
		trace.Append(Epoch{Epoch: i + 1, Cost: cost})
	}
	assert.Equal(t, 5, trace.Len())
	assert.Equal(t, []float64{0.69, 0.6, 0.62, 0.5, 0.5}, trace.Costs())
	assert.Equal(t, 0.75, trace.NonIncreasingRatio())
	assert.True(t, trace.Finite())

	last, ok := trace.Last()
	assert.True(t, ok)
	assert.Equal(t, 5, last.Epoch)

	epochs := trace.Epochs()
	epochs[0].Cost = 100
	assert.Equal(t, 0.69, trace.Costs()[0])

	trace.Append(Epoch{Epoch: 6, Cost: math.Inf(1)})
	assert.False(t, trace.Finite())
}
