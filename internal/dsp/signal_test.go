// internal/dsp/signal_test.go
package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test configuration constants - these mirror the config defaults
const (
	testFrequency  = 5.0
	testSampleRate = 1000.0
	testDuration   = 1.0
	testZoom       = 400
)

func testParams() Params {
	return Params{
		Frequency:    testFrequency,
		SampleRate:   testSampleRate,
		Duration:     testDuration,
		ZoomSamples:  testZoom,
		Cycles:       []int{1, 2, 3},
		CycleSamples: 100,
	}
}

func TestGenerate_LengthAndEndpoints(t *testing.T) {
	sig := Generate(testFrequency, testSampleRate, testDuration)

	require.Equal(t, 1000, sig.Len())
	require.Len(t, sig.Times, sig.Len())
	assert.Equal(t, 0.0, sig.Times[0])
	assert.Equal(t, testDuration, sig.Times[sig.Len()-1])
	assert.Equal(t, testDuration, sig.Duration())
}

func TestGenerate_UniformSpacing(t *testing.T) {
	sig := Generate(testFrequency, testSampleRate, testDuration)
	step := testDuration / float64(sig.Len()-1)

	for i := 1; i < sig.Len(); i++ {
		assert.InDelta(t, step, sig.Times[i]-sig.Times[i-1], 1e-12, "spacing at %d", i)
	}
}

func TestGenerate_AmplitudeBounded(t *testing.T) {
	sig := Generate(testFrequency, testSampleRate, testDuration)
	for i, v := range sig.Values {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v outside [-1, 1]", i, v)
		}
	}
}

func TestGenerate_MatchesSine(t *testing.T) {
	sig := Generate(testFrequency, testSampleRate, testDuration)
	for _, i := range []int{0, 1, 50, 499, 999} {
		want := math.Sin(2 * math.Pi * testFrequency * sig.Times[i])
		assert.Equal(t, want, sig.Values[i], "sample %d", i)
	}
}

func TestSampleCount(t *testing.T) {
	testCases := []struct {
		name     string
		rate     float64
		duration float64
		want     int
	}{
		{"default", 1000, 1, 1000},
		{"one cycle", 500, 0.2, 100},
		{"fractional rounds", 1000, 0.0004, 0},
		{"half second", 48000, 0.5, 24000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SampleCount(tc.rate, tc.duration))
		})
	}
}

func TestGenerateSpan_ExplicitCount(t *testing.T) {
	sig := GenerateSpan(testFrequency, 0.4, 200)

	require.Equal(t, 200, sig.Len())
	assert.Equal(t, 0.0, sig.Times[0])
	assert.Equal(t, 0.4, sig.Times[199])
}

func TestSignal_Window(t *testing.T) {
	sig := Generate(testFrequency, testSampleRate, testDuration)

	t.Run("prefix", func(t *testing.T) {
		w := sig.Window(testZoom)
		require.Equal(t, testZoom, w.Len())
		assert.Equal(t, sig.Values[:testZoom], w.Values)
		assert.Equal(t, sig.Times[testZoom-1], w.Duration())
	})

	t.Run("longer than signal", func(t *testing.T) {
		assert.Equal(t, sig.Len(), sig.Window(5000).Len())
	})

	t.Run("negative", func(t *testing.T) {
		assert.Equal(t, 0, sig.Window(-1).Len())
		assert.Equal(t, 0.0, sig.Window(-1).Duration())
	})

	t.Run("append does not clobber parent", func(t *testing.T) {
		w := sig.Window(10)
		_ = append(w.Values, 42)
		assert.NotEqual(t, 42.0, sig.Values[10])
	})
}
