// Package stats provides the small numeric toolkit shared by the scoring
// engine: least-squares fitting, online mean/variance, the logistic
// transform, and the calibration metrics computed over outcome logs.
package stats

import (
	"math"
)

// Fit is the result of a simple least-squares linear fit.
type Fit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// LinearFit fits y = intercept + slope*x over the given points.
// xs and ys must have equal length >= 2.
func LinearFit(xs, ys []float64) Fit {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return Fit{Intercept: sumY / n}
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssTot, ssRes float64
	for i := range xs {
		pred := intercept + slope*xs[i]
		ssRes += (ys[i] - pred) * (ys[i] - pred)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}

	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Fit{Slope: slope, Intercept: intercept, RSquared: r2}
}

// Welford accumulates mean and variance incrementally without retaining
// the observed values (Welford's online algorithm).
type Welford struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	M2    float64 `json:"m2"`
}

// Add folds one observation into the accumulator.
func (w *Welford) Add(value float64) {
	w.Count++
	delta := value - w.Mean
	w.Mean += delta / float64(w.Count)
	w.M2 += delta * (value - w.Mean)
}

// Variance returns the sample variance, or 0 below 2 observations.
func (w *Welford) Variance() float64 {
	if w.Count < 2 {
		return 0
	}
	return w.M2 / float64(w.Count-1)
}

// StdDev returns the sample standard deviation.
func (w *Welford) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

// Sigmoid is the standard logistic transform, bounding any real to (0, 1).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Clamp01 bounds a value to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BrierScore is the mean squared error between predicted probabilities and
// binary outcomes. Slices must have equal length >= 1.
func BrierScore(predicted []float64, actual []bool) float64 {
	if len(predicted) == 0 {
		return 0
	}
	var sum float64
	for i, p := range predicted {
		y := 0.0
		if actual[i] {
			y = 1.0
		}
		sum += (p - y) * (p - y)
	}
	return sum / float64(len(predicted))
}

// AUC computes the area under the ROC curve by pairwise ranking: the
// fraction of (positive, negative) pairs where the positive received the
// higher predicted probability, counting ties as half. Returns 0.5 when
// either class is absent.
func AUC(predicted []float64, actual []bool) float64 {
	var concordant, ties float64
	var pairs int
	for i, pi := range predicted {
		if !actual[i] {
			continue
		}
		for j, pj := range predicted {
			if actual[j] {
				continue
			}
			pairs++
			switch {
			case pi > pj:
				concordant++
			case pi == pj:
				ties++
			}
		}
	}
	if pairs == 0 {
		return 0.5
	}
	return (concordant + 0.5*ties) / float64(pairs)
}
