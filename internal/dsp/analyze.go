// internal/dsp/analyze.go
package dsp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrequency indicates frequency must be positive and below Nyquist
	ErrInvalidFrequency = errors.New("frequency must be positive and less than Nyquist frequency")
	// ErrInvalidSampleRate indicates sample rate must be positive
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	// ErrInvalidDuration indicates duration must be positive
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrTooFewSamples indicates sample rate and duration yield fewer than two samples
	ErrTooFewSamples = errors.New("sample rate and duration must yield at least two samples")
	// ErrInvalidZoom indicates the zoom window must hold at least three samples
	ErrInvalidZoom = errors.New("zoom window must be at least 3 samples")
)

// Params is the immutable run configuration for Analyze.
// All values should come from the application config.
type Params struct {
	// Frequency of the generated sine in Hz (from config: frequency)
	Frequency float64
	// SampleRate in Hz (from config: sample_rate)
	SampleRate float64
	// Duration in seconds (from config: duration)
	Duration float64
	// ZoomSamples is the prefix length searched for extrema (from config: zoom_samples)
	ZoomSamples int
	// Cycles lists the cycle counts drawn in the comparison figure
	Cycles []int
	// CycleSamples is the number of points per drawn cycle
	CycleSamples int
}

// Validate checks params before any work is done
func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if p.Duration <= 0 {
		return ErrInvalidDuration
	}
	if p.Frequency <= 0 || p.Frequency >= p.SampleRate/2 {
		return ErrInvalidFrequency
	}
	if SampleCount(p.SampleRate, p.Duration) < 2 {
		return ErrTooFewSamples
	}
	if p.ZoomSamples < 3 {
		return ErrInvalidZoom
	}
	return nil
}

// Period returns 1/f
func (p Params) Period() float64 {
	return 1 / p.Frequency
}

// Nyquist returns fs/2
func (p Params) Nyquist() float64 {
	return p.SampleRate / 2
}

// CycleSignal is a short sine holding a whole number of cycles
type CycleSignal struct {
	Cycles int
	Signal Signal
}

// Result is everything the renderer needs. It carries no references to
// intermediate computation state.
type Result struct {
	Params   Params
	Signal   Signal
	Zoom     Signal
	Maxima   []int // indices into Zoom
	Minima   []int // indices into Zoom
	Spectrum []SpectrumPoint
	Peak     Peak
	Stats    Statistics
	Cycles   []CycleSignal
}

// Marks returns the zoom window extrema as plottable marks
func (r Result) Marks() []ExtremumMark {
	return r.Zoom.Marks(r.Maxima, r.Minima)
}

// Analyze runs generation, extrema detection, spectral analysis and
// statistics for p. It is deterministic: equal params give bit-identical
// results.
func Analyze(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	sig := Generate(p.Frequency, p.SampleRate, p.Duration)
	zoom := sig.Window(p.ZoomSamples)
	maxima, minima := FindExtrema(zoom.Values)

	spectrum := Spectrum(sig.Values, p.SampleRate)
	peak, err := DominantPeak(spectrum)
	if err != nil {
		return Result{}, fmt.Errorf("spectral peak: %w", err)
	}

	stats := Describe(sig.Values, p.SampleRate)
	stats.DominantFrequency = peak.Frequency
	stats.PeakMagnitude = peak.Magnitude

	perCycle := p.CycleSamples
	if perCycle < 2 {
		perCycle = 100
	}
	cycles := make([]CycleSignal, 0, len(p.Cycles))
	for _, c := range p.Cycles {
		if c <= 0 {
			continue
		}
		cycles = append(cycles, CycleSignal{
			Cycles: c,
			Signal: GenerateSpan(p.Frequency, float64(c)*p.Period(), c*perCycle),
		})
	}

	return Result{
		Params:   p,
		Signal:   sig,
		Zoom:     zoom,
		Maxima:   maxima,
		Minima:   minima,
		Spectrum: spectrum,
		Peak:     peak,
		Stats:    stats,
		Cycles:   cycles,
	}, nil
}
