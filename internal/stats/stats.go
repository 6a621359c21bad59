// Package stats summarises generator output and checks it against a flat
// distribution over [0, 1).
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoSamples is returned when there is nothing to summarise.
var ErrNoSamples = errors.New("stats: no samples")

// Report describes a batch of doubles drawn from a generator.
type Report struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64

	// ChiSquare is Pearson's statistic for the bucket counts against a
	// uniform histogram, with Buckets-1 degrees of freedom.
	Buckets   int
	ChiSquare float64
	PValue    float64
}

// Uniformity builds a Report for samples, which must lie in [0, 1).
func Uniformity(samples []float64, buckets int) (Report, error) {
	if len(samples) == 0 {
		return Report{}, ErrNoSamples
	}
	if buckets < 2 {
		return Report{}, fmt.Errorf("stats: need at least 2 buckets, got %d", buckets)
	}

	obs := make([]float64, buckets)
	for i, x := range samples {
		if x < 0 || x >= 1 {
			return Report{}, fmt.Errorf("stats: sample %d is %v, outside [0, 1)", i, x)
		}
		// x*buckets can round up to buckets for x just below 1.
		obs[min(int(x*float64(buckets)), buckets-1)]++
	}

	exp := make([]float64, buckets)
	for i := range exp {
		exp[i] = float64(len(samples)) / float64(buckets)
	}

	mean, std := stat.MeanStdDev(samples, nil)
	chi := stat.ChiSquare(obs, exp)
	dist := distuv.ChiSquared{K: float64(buckets - 1)}

	return Report{
		Samples:   len(samples),
		Mean:      mean,
		StdDev:    std,
		Min:       floats.Min(samples),
		Max:       floats.Max(samples),
		Buckets:   buckets,
		ChiSquare: chi,
		PValue:    dist.Survival(chi),
	}, nil
}
