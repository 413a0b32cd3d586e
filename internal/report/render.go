// internal/report/render.go
package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ColonelBlimp/sinewave/internal/dsp"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Output file names. Existing files are overwritten.
const (
	BasicFile    = "senal_senoidal_basica.png"
	AnalysisFile = "senal_senoidal_analisis.png"
	CyclesFile   = "senal_ciclos.png"
)

var (
	// ErrInvalidDPI indicates dpi must be positive
	ErrInvalidDPI = errors.New("dpi must be positive")
	// ErrEmptyResult indicates the result has no samples to draw
	ErrEmptyResult = errors.New("result has no samples")
)

// Renderer writes the three analysis figures as PNG files
type Renderer struct {
	// OutputDir receives the images (from config: output_dir)
	OutputDir string
	// DPI of the rasterized images (from config: dpi)
	DPI int
	// SpectrumMaxFrequency limits the spectrum x axis in Hz (from config: spectrum_max_frequency)
	SpectrumMaxFrequency float64
}

// RenderAll writes every figure and returns the paths in the order written
func (r Renderer) RenderAll(res dsp.Result) ([]string, error) {
	steps := []func(dsp.Result) (string, error){r.RenderBasic, r.RenderAnalysis, r.RenderCycles}

	paths := make([]string, 0, len(steps))
	for _, step := range steps {
		path, err := step(res)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// RenderBasic draws the full waveform with a period annotation
func (r Renderer) RenderBasic(res dsp.Result) (string, error) {
	if err := r.check(res); err != nil {
		return "", err
	}
	pr := message.NewPrinter(Language)
	par := res.Params
	sig := res.Signal

	p := newPlot("Señal Senoidal", "Tiempo (s)", "Amplitud", vg.Points(16))
	l, err := line(xys(sig.Times, sig.Values), blue, 2.5)
	if err != nil {
		return "", fmt.Errorf("basic waveform: %w", err)
	}
	p.Add(l)
	p.Legend.Add(pr.Sprintf("Señal %v Hz", par.Frequency), l)

	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: sig.Duration() / 2, Y: -1.3}},
		Labels: []string{pr.Sprintf("Período = %v seg | Ciclos = %v", par.Period(), par.Frequency*par.Duration)},
	})
	if err != nil {
		return "", fmt.Errorf("basic annotation: %w", err)
	}
	for i := range note.TextStyle {
		note.TextStyle[i].XAlign = text.XCenter
		note.TextStyle[i].Font.Size = vg.Points(11)
	}
	p.Add(note)

	p.X.Min, p.X.Max = 0, sig.Duration()
	p.Y.Min, p.Y.Max = -1.5, 1.5

	return r.save(BasicFile, 12*vg.Inch, 6*vg.Inch, func(dc draw.Canvas) {
		p.Draw(dc)
	})
}

// RenderAnalysis draws the 2x2 analysis figure: full signal, zoom with
// extrema, spectrum and the statistics text
func (r Renderer) RenderAnalysis(res dsp.Result) (string, error) {
	if err := r.check(res); err != nil {
		return "", err
	}
	pr := message.NewPrinter(Language)
	par := res.Params

	full, err := r.signalPanel(res)
	if err != nil {
		return "", err
	}
	zoom, err := r.zoomPanel(res)
	if err != nil {
		return "", err
	}
	spec, err := r.spectrumPanel(res)
	if err != nil {
		return "", err
	}
	info, err := infoPanel(res)
	if err != nil {
		return "", err
	}

	title := pr.Sprintf("Análisis Completo de Señal Senoidal %v Hz", par.Frequency)
	plots := [][]*plot.Plot{{full, zoom}, {spec, info}}
	return r.save(AnalysisFile, 16*vg.Inch, 10*vg.Inch, func(dc draw.Canvas) {
		drawGrid(dc, title, plots)
	})
}

// RenderCycles compares short sines of 1, 2, 3... cycles with the full signal
func (r Renderer) RenderCycles(res dsp.Result) (string, error) {
	if err := r.check(res); err != nil {
		return "", err
	}
	pr := message.NewPrinter(Language)
	par := res.Params

	colors := []color.RGBA{blue, orange, green}
	glyphs := []draw.GlyphDrawer{draw.CircleGlyph{}, draw.BoxGlyph{}, draw.TriangleGlyph{}}

	var panels []*plot.Plot
	for i, c := range res.Cycles {
		title := pr.Sprintf("%d Ciclos Completos", c.Cycles)
		if c.Cycles == 1 {
			title = "1 Ciclo Completo"
		}
		p := newPlot(title, "Tiempo (s)", "Amplitud", vg.Points(12))

		pts := xys(c.Signal.Times, c.Signal.Values)
		l, err := line(pts, colors[i%len(colors)], 3)
		if err != nil {
			return "", fmt.Errorf("cycles panel %d: %w", c.Cycles, err)
		}
		s, err := scatter(pts, glyphs[i%len(glyphs)], colors[i%len(colors)], 2)
		if err != nil {
			return "", fmt.Errorf("cycles panel %d: %w", c.Cycles, err)
		}
		p.Add(zeroLine(), l, s)
		panels = append(panels, p)
	}

	orig := newPlot(pr.Sprintf("%v Ciclos Completos (Señal Original)", par.Frequency*par.Duration), "Tiempo (s)", "Amplitud", vg.Points(12))
	l, err := line(xys(res.Signal.Times, res.Signal.Values), red, 2.5)
	if err != nil {
		return "", fmt.Errorf("cycles original: %w", err)
	}
	orig.Add(zeroLine(), l)
	panels = append(panels, orig)

	title := pr.Sprintf("Ciclos de la Onda Senoidal (%v Hz)", par.Frequency)
	plots := tile(panels, 2)
	return r.save(CyclesFile, 14*vg.Inch, 10*vg.Inch, func(dc draw.Canvas) {
		drawGrid(dc, title, plots)
	})
}

func (r Renderer) check(res dsp.Result) error {
	if r.DPI <= 0 {
		return ErrInvalidDPI
	}
	if res.Signal.Len() == 0 {
		return ErrEmptyResult
	}
	return nil
}

func (r Renderer) signalPanel(res dsp.Result) (*plot.Plot, error) {
	pr := message.NewPrinter(Language)
	sig := res.Signal

	p := newPlot("Señal Senoidal Completa", "Tiempo (s)", "Amplitud", vg.Points(13))
	pts := xys(sig.Times, sig.Values)
	fill, err := area(pts, translucent(blue, 0.3))
	if err != nil {
		return nil, fmt.Errorf("signal panel: %w", err)
	}
	l, err := line(pts, blue, 2.5)
	if err != nil {
		return nil, fmt.Errorf("signal panel: %w", err)
	}
	p.Add(fill, l)
	p.Legend.Add(pr.Sprintf("Señal %v Hz", res.Params.Frequency), l)
	return p, nil
}

func (r Renderer) zoomPanel(res dsp.Result) (*plot.Plot, error) {
	pr := message.NewPrinter(Language)
	zoom := res.Zoom
	// window length in seconds, counted in samples rather than last timestamp
	span := float64(zoom.Len()) / res.Params.SampleRate

	p := newPlot(pr.Sprintf("Zoom en los Primeros %d ms", int(math.Round(1000*span))), "Tiempo (s)", "Amplitud", vg.Points(13))
	l, pts, err := plotter.NewLinePoints(xys(zoom.Times, zoom.Values))
	if err != nil {
		return nil, fmt.Errorf("zoom panel: %w", err)
	}
	l.LineStyle.Color = orange
	l.LineStyle.Width = vg.Points(3)
	pts.GlyphStyle.Shape = draw.CircleGlyph{}
	pts.GlyphStyle.Color = orange
	pts.GlyphStyle.Radius = vg.Points(2)
	p.Add(l, pts)
	p.Legend.Add(pr.Sprintf("Zoom (0-%.1fs)", span), l, pts)

	var maxPts, minPts plotter.XYs
	for _, m := range res.Marks() {
		xy := plotter.XY{X: m.Time, Y: m.Amplitude}
		if m.Kind == dsp.Maximum {
			maxPts = append(maxPts, xy)
		} else {
			minPts = append(minPts, xy)
		}
	}
	if len(maxPts) > 0 {
		s, err := scatter(maxPts, draw.TriangleGlyph{}, green, 6)
		if err != nil {
			return nil, fmt.Errorf("zoom maxima: %w", err)
		}
		p.Add(s)
		p.Legend.Add("Máximos", s)
	}
	if len(minPts) > 0 {
		s, err := scatter(minPts, downTriangleGlyph{}, red, 6)
		if err != nil {
			return nil, fmt.Errorf("zoom minima: %w", err)
		}
		p.Add(s)
		p.Legend.Add("Mínimos", s)
	}
	return p, nil
}

func (r Renderer) spectrumPanel(res dsp.Result) (*plot.Plot, error) {
	pr := message.NewPrinter(Language)

	limit := r.SpectrumMaxFrequency
	if limit <= 0 {
		limit = res.Params.Nyquist()
	}
	var pts plotter.XYs
	for _, sp := range res.Spectrum {
		if sp.Frequency > limit {
			break
		}
		pts = append(pts, plotter.XY{X: sp.Frequency, Y: sp.Magnitude})
	}

	p := newPlot("Transformada de Fourier (Espectro)", "Frecuencia (Hz)", "Magnitud", vg.Points(13))
	fill, err := area(pts, translucent(green, 0.3))
	if err != nil {
		return nil, fmt.Errorf("spectrum panel: %w", err)
	}
	l, err := line(pts, green, 2.5)
	if err != nil {
		return nil, fmt.Errorf("spectrum panel: %w", err)
	}

	f := res.Params.Frequency
	top := res.Peak.Magnitude * 1.05
	marker, err := line(plotter.XYs{{X: f, Y: 0}, {X: f, Y: top}}, red, 2.5)
	if err != nil {
		return nil, fmt.Errorf("spectrum marker: %w", err)
	}
	marker.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(fill, l, marker)
	p.Legend.Add(pr.Sprintf("Pico en %v Hz", f), marker)
	p.X.Min, p.X.Max = 0, limit
	return p, nil
}

// infoPanel renders the statistics text as one label per line on a
// plot with hidden axes
func infoPanel(res dsp.Result) (*plot.Plot, error) {
	lines := strings.Split(strings.TrimRight(Info(res), "\n"), "\n")

	p := blankPlot()
	labels := plotter.XYLabels{
		XYs:    make([]plotter.XY, len(lines)),
		Labels: lines,
	}
	step := 1.0 / float64(len(lines)+1)
	for i := range lines {
		labels.XYs[i] = plotter.XY{X: 0.02, Y: 1 - float64(i+1)*step}
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("info panel: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(9)
		l.TextStyle[i].XAlign = text.XLeft
	}
	p.Add(l)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p, nil
}

// tile arranges panels row-major into cols columns, padding the last
// row with blank plots
func tile(panels []*plot.Plot, cols int) [][]*plot.Plot {
	rows := (len(panels) + cols - 1) / cols
	grid := make([][]*plot.Plot, rows)
	for j := range grid {
		grid[j] = make([]*plot.Plot, cols)
		for i := range grid[j] {
			if k := j*cols + i; k < len(panels) {
				grid[j][i] = panels[k]
			} else {
				grid[j][i] = blankPlot()
			}
		}
	}
	return grid
}

// drawGrid draws a figure title and the plots aligned on a grid below it
func drawGrid(dc draw.Canvas, title string, plots [][]*plot.Plot) {
	titleHeight := vg.Points(36)

	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(16)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(8)}, title)

	body := draw.Crop(dc, 0, 0, 0, -titleHeight)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, body)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}
}

// save rasterizes a figure at the renderer's dpi and writes it as PNG
func (r Renderer) save(name string, w, h vg.Length, drawFn func(dc draw.Canvas)) (string, error) {
	img := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(r.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	drawFn(draw.New(img))

	path := filepath.Join(r.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path, nil
}
