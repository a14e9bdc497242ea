// Package render draws the coverage figure: a step plot of stacking depth
// versus genome position with the duplication region and its terminal tail
// highlighted as shaded bands.
package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/coverage"
)

// Opts control figure geometry.
type Opts struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	// TailLen is the length of the terminal duplication segment drawn as a
	// second, darker band.
	TailLen int
}

// DefaultOpts matches the conventional wide-and-short coverage figure.
var DefaultOpts = Opts{
	Width:   14 * vg.Inch,
	Height:  4.5 * vg.Inch,
	DPI:     300,
	TailLen: 750,
}

var (
	coverageColor = color.RGBA{B: 0xff, A: 0xff}
	regionColor   = color.RGBA{R: 0xff, G: 0xe0, B: 0xb2, A: 0x99}
	tailColor     = color.RGBA{R: 0xff, G: 0xab, B: 0x91, A: 0xb2}
)

func span(r coverage.Region, top float64, c color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: float64(r.Start), Y: 0},
		{X: float64(r.End), Y: 0},
		{X: float64(r.End), Y: top},
		{X: float64(r.Start), Y: top},
	})
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Width = 0
	return poly, nil
}

// CoveragePlot builds the coverage figure.  The x range spans the full track
// or the duplication region, whichever reaches further.
func CoveragePlot(t *coverage.Track, region coverage.Region, stats coverage.Stats, opts Opts) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Significant Gene Conversion Fragment Coverage"
	p.X.Label.Text = "Mitochondrial DNA Position (bp)"
	p.Y.Label.Text = "Stacking Coverage (Fragments)"
	p.Add(plotter.NewGrid())

	xmax := t.Len()
	if region.End > xmax {
		xmax = region.End
	}
	xy := make(plotter.XYs, xmax+1)
	for pos := 0; pos <= xmax; pos++ {
		xy[pos].X = float64(pos)
		xy[pos].Y = float64(t.Depth(pos))
	}
	line, err := plotter.NewLine(xy)
	if err != nil {
		return nil, err
	}
	line.StepStyle = plotter.PostStep
	line.Color = coverageColor
	line.Width = vg.Points(1.2)

	// Bands reach the top of the data range so they read as backgrounds.
	top := float64(stats.MaxDepth)
	if top == 0 {
		top = 1
	}
	dupBand, err := span(region, top, regionColor)
	if err != nil {
		return nil, err
	}
	tailBand, err := span(region.Tail(opts.TailLen), top, tailColor)
	if err != nil {
		return nil, err
	}

	p.Add(dupBand, tailBand, line)
	p.Legend.Add("Fragment coverage", line)
	p.Legend.Add(fmt.Sprintf("Duplication region (%.2f%% covered)", stats.RegionPct), dupBand)
	p.Legend.Add(fmt.Sprintf("Last %d bp of duplication (%.2f%% covered)", opts.TailLen, stats.TailPct), tailBand)
	p.Legend.Top = true
	p.Legend.Left = true
	p.X.Min = 0
	p.Y.Min = 0
	return p, nil
}

// WritePNG renders p at opts's geometry and writes it to path, silently
// overwriting an existing file.
func WritePNG(p *plot.Plot, path string, opts Opts) (err error) {
	c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(c))
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating figure file")
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = e
		}
	}()
	png := vgimg.PngCanvas{Canvas: c}
	if _, err = png.WriteTo(out); err != nil {
		return errors.Wrapf(err, "%s: writing PNG", path)
	}
	return nil
}
