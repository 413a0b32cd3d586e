// internal/report/style.go
package report

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blue   = rgb(0x1f77b4)
	orange = rgb(0xff7f0e)
	green  = rgb(0x2ca02c)
	red    = rgb(0xd62728)
	black  = color.Black

	gridColor = color.Gray{Y: 0xb2}
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// translucent returns c with alpha scaled to a, premultiplied as image/color expects
func translucent(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// newPlot returns a plot with title, axis labels and a dashed grid
func newPlot(title, xLabel, yLabel string, titleSize vg.Length) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleSize
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	g := plotter.NewGrid()
	g.Vertical.Color = gridColor
	g.Horizontal.Color = gridColor
	g.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	g.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(g)
	return p
}

// blankPlot fills an unused tile
func blankPlot() *plot.Plot {
	p := plot.New()
	p.HideAxes()
	return p
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func line(pts plotter.XYs, c color.Color, width float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(width)
	return l, nil
}

// area closes pts against y = 0 so the region between the curve and the
// axis can be filled
func area(pts plotter.XYs, c color.Color) (*plotter.Polygon, error) {
	if len(pts) == 0 {
		return nil, plotter.ErrNoData
	}
	ring := make(plotter.XYs, 0, len(pts)+2)
	ring = append(ring, plotter.XY{X: pts[0].X, Y: 0})
	ring = append(ring, pts...)
	ring = append(ring, plotter.XY{X: pts[len(pts)-1].X, Y: 0})

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Width = 0
	return poly, nil
}

// zeroLine draws the y = 0 axis across the data range
func zeroLine() *plotter.Function {
	f := plotter.NewFunction(func(float64) float64 { return 0 })
	f.Color = black
	f.Width = vg.Points(0.5)
	return f
}

func scatter(pts plotter.XYs, shape draw.GlyphDrawer, c color.Color, radius float64) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(radius)
	return s, nil
}

// downTriangleGlyph is a filled triangle pointing down, used for minima
type downTriangleGlyph struct{}

// DrawGlyph implements draw.GlyphDrawer
func (downTriangleGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius + (sty.Radius-sty.Radius*vg.Length(math.Sin(math.Pi/6)))/2
	dx := r * vg.Length(math.Cos(math.Pi/6))
	dy := r * vg.Length(math.Sin(math.Pi/6))

	var path vg.Path
	path.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	path.Line(vg.Point{X: pt.X - dx, Y: pt.Y + dy})
	path.Line(vg.Point{X: pt.X + dx, Y: pt.Y + dy})
	path.Close()

	c.SetColor(sty.Color)
	c.Fill(path)
}
