// internal/dsp/signal.go
package dsp

import (
	"math"
)

// Signal is a uniformly sampled waveform. Times and Values are parallel
// slices; Times[0] is 0 and Times[len-1] is the full duration.
type Signal struct {
	Times  []float64
	Values []float64
}

// Len returns the number of samples
func (s Signal) Len() int {
	return len(s.Values)
}

// Duration returns the time of the last sample
func (s Signal) Duration() float64 {
	if len(s.Times) == 0 {
		return 0
	}
	return s.Times[len(s.Times)-1]
}

// Window returns a view of the first n samples. If the signal is shorter
// than n the whole signal is returned. The slices share storage with s.
func (s Signal) Window(n int) Signal {
	if n > s.Len() {
		n = s.Len()
	}
	if n < 0 {
		n = 0
	}
	return Signal{Times: s.Times[:n:n], Values: s.Values[:n:n]}
}

// SampleCount returns the number of samples for a sample rate and duration,
// i.e. fs·D rounded to the nearest integer.
func SampleCount(sampleRate, duration float64) int {
	return int(math.Round(sampleRate * duration))
}

// Generate samples sin(2π·f·t) at round(fs·D) points spread evenly over
// [0, D], both endpoints included.
func Generate(frequency, sampleRate, duration float64) Signal {
	return GenerateSpan(frequency, duration, SampleCount(sampleRate, duration))
}

// GenerateSpan samples sin(2π·f·t) at n points spread evenly over [0, D].
// n must be greater than 1.
func GenerateSpan(frequency, duration float64, n int) Signal {
	times := make([]float64, n)
	values := make([]float64, n)
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		t := duration * float64(i) / last
		if i == n-1 {
			t = duration
		}
		times[i] = t
		values[i] = math.Sin(2 * math.Pi * frequency * t)
	}
	return Signal{Times: times, Values: values}
}
