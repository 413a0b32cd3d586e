package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper() {
	viper.Reset()
}

func validSettings() Settings {
	return Settings{
		Frequency:            DefaultFrequency,
		SampleRate:           DefaultSampleRate,
		Duration:             DefaultDuration,
		ZoomSamples:          DefaultZoomSamples,
		Cycles:               []int{1, 2, 3},
		CycleSamples:         DefaultCycleSamples,
		SpectrumMaxFrequency: DefaultSpectrumMaxFrequency,
		DPI:                  DefaultDPI,
		OutputDir:            DefaultOutputDir,
	}
}

func TestInit_WithDefaults(t *testing.T) {
	resetViper()

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"frequency", 5.0},
		{"sample_rate", 1000.0},
		{"duration", 1.0},
		{"zoom_samples", 400},
		{"cycle_samples", 100},
		{"spectrum_max_frequency", 50.0},
		{"dpi", 150},
		{"output_dir", "."},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := viper.Get(tt.key)
			if got != tt.expected {
				t.Errorf("viper.Get(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestGet_ReturnsDefaults(t *testing.T) {
	resetViper()
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	s, err := Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want := validSettings()
	if !reflect.DeepEqual(*s, want) {
		t.Errorf("Get() = %+v, want %+v", *s, want)
	}
}

func TestGet_InvalidOverride(t *testing.T) {
	resetViper()
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	viper.Set("frequency", 600)

	_, err := Get()
	if err == nil {
		t.Fatal("Get() expected error for frequency above Nyquist")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %v, want it to mention invalid config", err)
	}
}

func TestGet_IgnoresEnvironment(t *testing.T) {
	resetViper()
	t.Setenv("FREQUENCY", "40")
	t.Setenv("SINEWAVE_FREQUENCY", "40")
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	s, err := Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.Frequency != DefaultFrequency {
		t.Errorf("Frequency = %v, want %v", s.Frequency, DefaultFrequency)
	}
}

func TestValidate_Valid(t *testing.T) {
	s := validSettings()
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantMsg string
	}{
		{"zero frequency", func(s *Settings) { s.Frequency = 0 }, "frequency must be positive"},
		{"negative sample rate", func(s *Settings) { s.SampleRate = -1 }, "sample_rate must be positive"},
		{"zero duration", func(s *Settings) { s.Duration = 0 }, "duration must be positive"},
		{"single sample", func(s *Settings) { s.Duration = 0.001 }, "at least 2 samples"},
		{"small zoom", func(s *Settings) { s.ZoomSamples = 2 }, "zoom_samples"},
		{"zero cycle", func(s *Settings) { s.Cycles = []int{1, 0} }, "cycles must all be positive"},
		{"few cycle samples", func(s *Settings) { s.CycleSamples = 1 }, "cycle_samples"},
		{"zero spectrum limit", func(s *Settings) { s.SpectrumMaxFrequency = 0 }, "spectrum_max_frequency"},
		{"low dpi", func(s *Settings) { s.DPI = 10 }, "dpi must be between"},
		{"high dpi", func(s *Settings) { s.DPI = 5000 }, "dpi must be between"},
		{"empty output dir", func(s *Settings) { s.OutputDir = "" }, "output_dir"},
		{"at nyquist", func(s *Settings) { s.Frequency = 500 }, "Nyquist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.modify(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	s := validSettings()
	s.ZoomSamples = 0
	s.DPI = 0
	s.OutputDir = ""

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"zoom_samples", "dpi", "output_dir"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestSettings_Params(t *testing.T) {
	s := validSettings()
	p := s.Params()

	if p.Frequency != s.Frequency || p.SampleRate != s.SampleRate || p.Duration != s.Duration {
		t.Errorf("Params() signal fields = %+v, want from %+v", p, s)
	}
	if p.ZoomSamples != s.ZoomSamples || p.CycleSamples != s.CycleSamples {
		t.Errorf("Params() analysis fields = %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Params().Validate() error = %v", err)
	}

	// Params owns its cycle slice
	p.Cycles[0] = 9
	if s.Cycles[0] != 1 {
		t.Errorf("Params() shares Cycles with Settings")
	}
}
