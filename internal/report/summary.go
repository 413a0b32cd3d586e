// internal/report/summary.go
package report

import (
	"io"
	"strings"

	"github.com/ColonelBlimp/sinewave/internal/dsp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rule = 70

// Amplitude is the fixed peak amplitude of the generated sine
const Amplitude = 1.0

// Language of the console report and plot labels
var Language = language.Spanish

// WriteHeader prints the parameter banner shown before the figures are written
func WriteHeader(w io.Writer, res dsp.Result) error {
	p := message.NewPrinter(Language)
	par := res.Params

	b := &strings.Builder{}
	p.Fprintln(b, strings.Repeat("=", rule))
	p.Fprintln(b, "SEÑAL SENOIDAL BÁSICA")
	p.Fprintln(b, strings.Repeat("=", rule))
	p.Fprintf(b, "\nParámetros:\n")
	p.Fprintf(b, "  • Frecuencia (f): %v Hz\n", par.Frequency)
	p.Fprintf(b, "  • Frecuencia de muestreo (fs): %v Hz\n", par.SampleRate)
	p.Fprintf(b, "  • Duración: %v segundos\n", par.Duration)
	p.Fprintf(b, "  • Número de muestras: %d\n", res.Signal.Len())
	p.Fprintf(b, "  • Amplitud: %.1f\n", Amplitude)
	p.Fprintf(b, "\nFórmula: senal = sin(2π × %v × t)\n\n", par.Frequency)

	_, err := io.WriteString(w, b.String())
	return err
}

// Info returns the statistics block drawn in the analysis figure and
// printed to the console
func Info(res dsp.Result) string {
	p := message.NewPrinter(Language)
	par := res.Params
	st := res.Stats

	b := &strings.Builder{}
	p.Fprintln(b, "INFORMACIÓN DE LA SEÑAL SENOIDAL")
	p.Fprintln(b, strings.Repeat("=", 50))
	p.Fprintln(b)
	p.Fprintln(b, "PARÁMETROS DE LA ONDA:")
	p.Fprintf(b, "   • Frecuencia (f): %v Hz\n", par.Frequency)
	p.Fprintf(b, "   • Período (T = 1/f): %.4f segundos\n", par.Period())
	p.Fprintf(b, "   • Amplitud: %.1f\n", Amplitude)
	p.Fprintf(b, "   • Ecuación: sin(2π × %v × t)\n", par.Frequency)
	p.Fprintln(b)
	p.Fprintln(b, "ESTADÍSTICAS:")
	p.Fprintf(b, "   • Amplitud Máxima: %.4f\n", st.PeakAmplitude)
	p.Fprintf(b, "   • Amplitud RMS: %.4f\n", st.RMS)
	p.Fprintf(b, "   • Potencia Promedio: %.4f\n", st.AveragePower)
	p.Fprintf(b, "   • Energía Total: %.4f\n", st.TotalEnergy)
	p.Fprintln(b)
	p.Fprintln(b, "ANÁLISIS DE FOURIER:")
	p.Fprintf(b, "   • Frecuencia Detectada: %.2f Hz\n", st.DominantFrequency)
	p.Fprintf(b, "   • Magnitud del Pico: %.4f\n", st.PeakMagnitude)
	p.Fprintf(b, "   • Frecuencia Nyquist: %.0f Hz\n", par.Nyquist())
	p.Fprintln(b)
	p.Fprintln(b, "MUESTREO:")
	p.Fprintf(b, "   • Frecuencia de Muestreo (fs): %v Hz\n", par.SampleRate)
	p.Fprintf(b, "   • Duración: %.3f segundos\n", par.Duration)
	p.Fprintf(b, "   • Número de Muestras: %d\n", res.Signal.Len())
	p.Fprintf(b, "   • Resolución: %.2f ms\n", 1000/par.SampleRate)
	p.Fprintln(b)
	if par.SampleRate > 2*par.Frequency {
		p.Fprintln(b, "La señal fue muestreada correctamente")
		p.Fprintln(b, "porque fs > 2 × f (Teorema de Nyquist)")
		p.Fprintf(b, "%v > 2 × %v = %v\n", par.SampleRate, par.Frequency, 2*par.Frequency)
	} else {
		p.Fprintln(b, "La señal NO cumple el Teorema de Nyquist")
		p.Fprintf(b, "%v <= 2 × %v = %v\n", par.SampleRate, par.Frequency, 2*par.Frequency)
	}
	return b.String()
}

// WriteSummary prints the statistics block followed by the list of files written
func WriteSummary(w io.Writer, res dsp.Result, files []string) error {
	p := message.NewPrinter(Language)

	b := &strings.Builder{}
	b.WriteString(Info(res))
	p.Fprintln(b)
	p.Fprintln(b, strings.Repeat("=", rule))
	p.Fprintln(b, "SCRIPT COMPLETADO EXITOSAMENTE")
	p.Fprintln(b, strings.Repeat("=", rule))
	if len(files) > 0 {
		p.Fprintln(b, "\nARCHIVOS GUARDADOS:")
		for i, f := range files {
			p.Fprintf(b, "   %d. %s\n", i+1, f)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
