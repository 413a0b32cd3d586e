// internal/dsp/stats.go
package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Statistics summarizes a sampled signal. The spectral fields are filled
// in by Analyze from the dominant spectrum peak.
type Statistics struct {
	PeakAmplitude float64 // max |x|
	RMS           float64 // sqrt(mean x²)
	AveragePower  float64 // mean x²
	TotalEnergy   float64 // Σx² / fs

	DominantFrequency float64
	PeakMagnitude     float64
}

// Describe computes the time-domain statistics of values sampled at
// sampleRate. An empty input yields zero statistics.
func Describe(values []float64, sampleRate float64) Statistics {
	if len(values) == 0 {
		return Statistics{}
	}

	// Σx² as a dot product with itself
	sumSquares := floats.Dot(values, values)
	power := sumSquares / float64(len(values))

	return Statistics{
		PeakAmplitude: math.Max(floats.Max(values), -floats.Min(values)),
		RMS:           math.Sqrt(power),
		AveragePower:  power,
		TotalEnergy:   sumSquares / sampleRate,
	}
}
