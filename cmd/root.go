// cmd/root.go
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ColonelBlimp/sinewave/internal/config"
	"github.com/ColonelBlimp/sinewave/internal/dsp"
	"github.com/ColonelBlimp/sinewave/internal/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sinewave",
	Short: "Synthetic sine wave analysis",
	Long: `Generates a 5 Hz sine sampled at 1000 Hz for one second, finds its local
extrema, spectrum and statistics, prints a report and writes three PNG figures
to the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

// run executes the pipeline once: analyze, print, render
func run(stdout, stderr io.Writer) error {
	log := newLogger(stderr)

	cfg, err := config.Get()
	if err != nil {
		return err
	}

	log.Info().
		Float64("frequency", cfg.Frequency).
		Float64("sample_rate", cfg.SampleRate).
		Float64("duration", cfg.Duration).
		Msg("analyzing signal")

	res, err := dsp.Analyze(cfg.Params())
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	log.Debug().
		Int("maxima", len(res.Maxima)).
		Int("minima", len(res.Minima)).
		Float64("peak_hz", res.Peak.Frequency).
		Msg("analysis complete")

	if err = report.WriteHeader(stdout, res); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	r := report.Renderer{
		OutputDir:            cfg.OutputDir,
		DPI:                  cfg.DPI,
		SpectrumMaxFrequency: cfg.SpectrumMaxFrequency,
	}
	paths, err := r.RenderAll(res)
	for _, p := range paths {
		log.Info().Str("file", p).Msg("figure saved")
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err = report.WriteSummary(stdout, res, paths); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	log.Info().Int("files", len(paths)).Msg("done")
	return nil
}
