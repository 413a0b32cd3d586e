// internal/dsp/spectrum.go
package dsp

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// ErrEmptySpectrum indicates there are no bins to search for a peak
var ErrEmptySpectrum = errors.New("spectrum has no non-negative bins")

// SpectrumPoint is one non-negative frequency bin of a DFT.
// Magnitude is |X[k]| divided by the transform length, so a unit sine
// shows up as roughly 0.5 in its positive bin.
type SpectrumPoint struct {
	Frequency float64
	Magnitude float64
}

// Peak is the strongest retained bin of a spectrum
type Peak struct {
	Bin       int
	Frequency float64
	Magnitude float64
}

// FrequencyBin returns the two-sided frequency of bin k for an n-point
// transform at sampleRate: k·fs/n below n/2, (k−n)·fs/n from n/2 upward.
// For even n the Nyquist bin is reported as the negative frequency −fs/2.
func FrequencyBin(k, n int, sampleRate float64) float64 {
	if 2*k < n {
		return float64(k) * sampleRate / float64(n)
	}
	return float64(k-n) * sampleRate / float64(n)
}

// Spectrum computes the full n-point DFT of values and returns the bins
// with non-negative frequency, in bin order, with magnitudes normalized
// by n. The length of values does not have to be a power of two.
func Spectrum(values []float64, sampleRate float64) []SpectrumPoint {
	n := len(values)
	if n == 0 {
		return nil
	}

	seq := make([]complex128, n)
	for i, v := range values {
		seq[i] = complex(v, 0)
	}
	coeffs := fourier.NewCmplxFFT(n).Coefficients(nil, seq)

	points := make([]SpectrumPoint, 0, n/2+1)
	for k, c := range coeffs {
		freq := FrequencyBin(k, n, sampleRate)
		if freq < 0 {
			continue
		}
		points = append(points, SpectrumPoint{
			Frequency: freq,
			Magnitude: cmplx.Abs(c) / float64(n),
		})
	}
	return points
}

// DominantPeak returns the bin with the largest magnitude. Only bins below
// n/2 are considered, which for a spectrum built by Spectrum is every
// retained bin: the Nyquist bin of an even-length transform is mirrored
// negative and never retained. Ties go to the lowest frequency.
func DominantPeak(spectrum []SpectrumPoint) (Peak, error) {
	if len(spectrum) == 0 {
		return Peak{}, ErrEmptySpectrum
	}

	mags := make([]float64, len(spectrum))
	for i, p := range spectrum {
		mags[i] = p.Magnitude
	}
	idx := floats.MaxIdx(mags)

	return Peak{
		Bin:       idx,
		Frequency: spectrum[idx].Frequency,
		Magnitude: spectrum[idx].Magnitude,
	}, nil
}
