// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     figure
// Description: PNG figures of the integrand and of the convergence study
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package figure

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/msto63/mdw-simpson/internal/capacitor"
	"github.com/msto63/mdw-simpson/internal/quadrature"
	"github.com/msto63/mdw-simpson/internal/study"
	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

var (
	colorCurve  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorArea   = color.NRGBA{R: 0, G: 255, B: 255, A: 77}
	colorNodes  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorErrors = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// Default file names of the two figures
const (
	DefaultIntegrandFile = "carga_capacitor_simpson.png"
	DefaultErrorFile     = "error_carga_capacitor.png"
)

// Options controls sampling and output size
type Options struct {
	SamplePoints int     // points of the smooth curve
	Subdivisions int     // Simpson subdivisions whose nodes are marked
	Width        float64 // inches
	Height       float64 // inches
	DPI          int
}

// DefaultOptions returns 100 curve samples, the n = 30 nodes and a
// 6.4 × 4.8 in figure at 100 DPI
func DefaultOptions() Options {
	return Options{
		SamplePoints: 100,
		Subdivisions: 30,
		Width:        6.4,
		Height:       4.8,
		DPI:          100,
	}
}

func (o Options) validate() error {
	if o.SamplePoints < 2 {
		return mdwerrors.InvalidArgument("at least two sample points are required").
			WithOperation("figure").WithDetail("sample_points", o.SamplePoints)
	}
	if o.Width <= 0 || o.Height <= 0 || o.DPI <= 0 {
		return mdwerrors.InvalidArgument("figure size and DPI must be positive").
			WithOperation("figure").
			WithDetail("width", o.Width).
			WithDetail("height", o.Height).
			WithDetail("dpi", o.DPI)
	}
	return nil
}

// Integrand builds the V(t) figure: the curve, the shaded area under it and
// markers at the Simpson nodes
func Integrand(p capacitor.Problem, opts Options) (*plot.Plot, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := quadrature.CheckSubdivisions(opts.Subdivisions); err != nil {
		return nil, err
	}

	ts := quadrature.Nodes(0, p.Duration, opts.SamplePoints-1)
	curve := toXYs(ts, quadrature.Sample(p.Integrand(), ts))

	nodes := quadrature.Nodes(0, p.Duration, opts.Subdivisions)
	points := toXYs(nodes, quadrature.Sample(p.Integrand(), nodes))

	pl := plot.New()
	pl.Title.Text = "Carga en el capacitor (Regla de Simpson)"
	pl.X.Label.Text = "Tiempo (s)"
	pl.Y.Label.Text = "Voltaje (V)"
	pl.Add(plotter.NewGrid())

	area, err := plotter.NewLine(curve)
	if err != nil {
		return nil, wrapPlot(err)
	}
	area.LineStyle.Width = 0
	area.FillColor = colorArea

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, wrapPlot(err)
	}
	line.LineStyle.Color = colorCurve
	line.LineStyle.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, wrapPlot(err)
	}
	scatter.GlyphStyle.Color = colorNodes
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(2.5)

	pl.Add(area, line, scatter)
	pl.Legend.Add(fmt.Sprintf("V(t) = %ge^(-%gt)", p.Amplitude, p.Rate), line)
	pl.Legend.Add("Área aproximada", area)
	pl.Legend.Add("Puntos de interpolación", scatter)
	pl.Legend.Top = true

	// the shaded area reaches down to V = 0
	pl.Y.Min = math.Min(pl.Y.Min, 0)
	pl.Y.Max = math.Max(pl.Y.Max, 0)

	return pl, nil
}

// ErrorCurve builds the error-versus-n figure
func ErrorCurve(res *study.Result) (*plot.Plot, error) {
	records := res.ByN()
	if len(records) == 0 {
		return nil, mdwerrors.InvalidArgument("no records to plot").WithOperation("figure.ErrorCurve")
	}

	xys := make(plotter.XYs, len(records))
	for i, r := range records {
		xys[i].X = float64(r.N)
		xys[i].Y = r.Error
	}

	pl := plot.New()
	pl.Title.Text = "Error en la aproximación de la carga"
	pl.X.Label.Text = "Número de subintervalos (n)"
	pl.Y.Label.Text = "Error (C)"
	pl.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, wrapPlot(err)
	}
	line.LineStyle.Color = colorErrors
	line.LineStyle.Width = vg.Points(1.5)
	points.GlyphStyle.Color = colorErrors
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)

	pl.Add(line, points)
	return pl, nil
}

// SavePNG renders pl into a PNG file, creating the directory if needed
func SavePNG(pl *plot.Plot, opts Options, path string) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return mdwerrors.Wrap(err, mdwerrors.CodeIO, "cannot create directory").WithDetail("path", dir)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	pl.Draw(draw.New(c))

	f, err := createFile(path)
	if err != nil {
		return mdwerrors.Wrap(err, mdwerrors.CodeIO, "cannot create png").WithDetail("path", path)
	}
	if err := writePNG(c, f); err != nil {
		f.Close()
		return mdwerrors.Wrap(err, mdwerrors.CodeIO, "cannot write png").WithDetail("path", path)
	}
	if err := f.Close(); err != nil {
		return mdwerrors.Wrap(err, mdwerrors.CodeIO, "cannot close png").WithDetail("path", path)
	}
	return nil
}

// createFile opens the destination of a figure
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writePNG encodes c into w through a buffer
func writePNG(c *vgimg.Canvas, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteIntegrand renders the integrand figure to path
func WriteIntegrand(p capacitor.Problem, opts Options, path string) error {
	pl, err := Integrand(p, opts)
	if err != nil {
		return err
	}
	return SavePNG(pl, opts, path)
}

// WriteErrorCurve renders the error figure to path
func WriteErrorCurve(res *study.Result, opts Options, path string) error {
	pl, err := ErrorCurve(res)
	if err != nil {
		return err
	}
	return SavePNG(pl, opts, path)
}

func toXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func wrapPlot(err error) error {
	return mdwerrors.Wrap(err, mdwerrors.CodeInternal, "cannot build plot")
}
