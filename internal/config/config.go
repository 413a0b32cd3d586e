// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"github.com/ColonelBlimp/sinewave/internal/dsp"
	"github.com/spf13/viper"
)

const (
	AppName = "sinewave"

	DefaultFrequency            = 5.0
	DefaultSampleRate           = 1000.0
	DefaultDuration             = 1.0
	DefaultZoomSamples          = 400
	DefaultSpectrumMaxFrequency = 50.0
	DefaultDPI                  = 150
	DefaultOutputDir            = "."
	DefaultCycleSamples         = 100
)

// DefaultCycles are the cycle counts drawn next to the full signal
var DefaultCycles = []int{1, 2, 3}

// Settings holds the run configuration. The values are fixed; there is no
// config file, environment binding or flag for any of them.
type Settings struct {
	// Signal
	Frequency  float64 `mapstructure:"frequency"`
	SampleRate float64 `mapstructure:"sample_rate"`
	Duration   float64 `mapstructure:"duration"`

	// Analysis
	ZoomSamples  int   `mapstructure:"zoom_samples"`
	Cycles       []int `mapstructure:"cycles"`
	CycleSamples int   `mapstructure:"cycle_samples"`

	// Output
	SpectrumMaxFrequency float64 `mapstructure:"spectrum_max_frequency"`
	DPI                  int     `mapstructure:"dpi"`
	OutputDir            string  `mapstructure:"output_dir"`
}

// Init registers the fixed defaults with Viper
func Init() error {
	viper.SetDefault("frequency", DefaultFrequency)
	viper.SetDefault("sample_rate", DefaultSampleRate)
	viper.SetDefault("duration", DefaultDuration)
	viper.SetDefault("zoom_samples", DefaultZoomSamples)
	viper.SetDefault("cycles", DefaultCycles)
	viper.SetDefault("cycle_samples", DefaultCycleSamples)
	viper.SetDefault("spectrum_max_frequency", DefaultSpectrumMaxFrequency)
	viper.SetDefault("dpi", DefaultDPI)
	viper.SetDefault("output_dir", DefaultOutputDir)
	return nil
}

// Get returns the current settings
func Get() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Validate checks that all settings are within acceptable ranges
func (s *Settings) Validate() error {
	var errs []error

	if s.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("frequency must be positive, got %v", s.Frequency))
	}
	if s.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %v", s.SampleRate))
	}
	if s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", s.Duration))
	}
	if n := dsp.SampleCount(s.SampleRate, s.Duration); s.SampleRate > 0 && s.Duration > 0 && n < 2 {
		errs = append(errs, fmt.Errorf("sample_rate * duration must give at least 2 samples, got %d", n))
	}

	if s.ZoomSamples < 3 {
		errs = append(errs, fmt.Errorf("zoom_samples must be at least 3, got %d", s.ZoomSamples))
	}
	for _, c := range s.Cycles {
		if c < 1 {
			errs = append(errs, fmt.Errorf("cycles must all be positive, got %d", c))
		}
	}
	if s.CycleSamples < 2 {
		errs = append(errs, fmt.Errorf("cycle_samples must be at least 2, got %d", s.CycleSamples))
	}

	if s.SpectrumMaxFrequency <= 0 {
		errs = append(errs, fmt.Errorf("spectrum_max_frequency must be positive, got %v", s.SpectrumMaxFrequency))
	}
	if s.DPI < 36 || s.DPI > 1200 {
		errs = append(errs, fmt.Errorf("dpi must be between 36 and 1200, got %d", s.DPI))
	}
	if s.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}

	// Nyquist check: the sine must sit below half the sample rate
	if s.Frequency >= s.SampleRate/2 {
		errs = append(errs, fmt.Errorf("frequency (%v Hz) must be less than Nyquist frequency (%v Hz)", s.Frequency, s.SampleRate/2))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Params converts the settings into the analysis parameters
func (s *Settings) Params() dsp.Params {
	cycles := make([]int, len(s.Cycles))
	copy(cycles, s.Cycles)
	return dsp.Params{
		Frequency:    s.Frequency,
		SampleRate:   s.SampleRate,
		Duration:     s.Duration,
		ZoomSamples:  s.ZoomSamples,
		Cycles:       cycles,
		CycleSamples: s.CycleSamples,
	}
}
