package render

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Map is one titled figure built from stacked layers.
type Map struct {
	Title  string
	Layers []Layer
}

// titleBand is the extra canvas height reserved for a figure title.
const titleBand = vg.Inch / 2

// fallbackAspect sizes figures when the dataset has no usable extent.
const fallbackAspect = 0.75

// Renderer writes figures as PNG files. Every figure is framed by the same
// dataset bounds so the state keeps its extent and aspect across outputs.
type Renderer struct {
	Style  Style
	Bounds *geom.Bounds

	log *zap.Logger
}

// New returns a Renderer framing its figures to bounds.
func New(style Style, bounds *geom.Bounds) *Renderer {
	return &Renderer{
		Style:  style,
		Bounds: bounds,
		log:    zap.L().With(zap.String("component", "render")),
	}
}

// WriteMap renders m as a single-panel PNG at path. Maps with a shaded layer
// get a horizontal color bar under the map area.
func (r *Renderer) WriteMap(m Map, path string) error {
	p, err := r.mapPlot(m)
	if err != nil {
		return err
	}

	w := r.Style.Width
	h := r.mapHeight()
	cm := valueColorMap(m)
	if cm != nil {
		h += r.Style.ColorBar
	}

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.Style.DPI))
	dc := draw.New(canvas)

	if cm == nil {
		p.Draw(dc)
	} else {
		mapC, barC := splitBar(dc, r.Style.ColorBar)
		p.Draw(mapC)
		colorBarPlot(cm).Draw(barC)
	}

	if err := writePNG(canvas, path); err != nil {
		return err
	}
	r.log.Info("wrote figure", zap.String("path", path), zap.String("title", m.Title))
	return nil
}

// WriteGrid renders four maps as one 2x2 PNG at path. grid[0] is the top
// row and grid[row][0] the left column.
func (r *Renderer) WriteGrid(grid [2][2]Map, path string) error {
	w := r.Style.Width * 2
	tileH := r.mapHeight() + r.Style.ColorBar
	h := tileH * 2

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.Style.DPI))
	dc := draw.New(canvas)

	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			m := grid[row][col]
			p, err := r.mapPlot(m)
			if err != nil {
				return err
			}

			tile := tiles.At(dc, col, row)
			cm := valueColorMap(m)
			if cm == nil {
				p.Draw(tile)
				continue
			}
			mapC, barC := splitBar(tile, r.Style.ColorBar)
			p.Draw(mapC)
			colorBarPlot(cm).Draw(barC)
		}
	}

	if err := writePNG(canvas, path); err != nil {
		return err
	}
	r.log.Info("wrote figure grid", zap.String("path", path))
	return nil
}

// mapPlot builds the titled, axis-less plot for one map.
func (r *Renderer) mapPlot(m Map) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = m.Title
	p.Title.TextStyle.Font.Size = r.Style.TitleSize
	p.HideAxes()
	r.frame(p)

	for _, l := range m.Layers {
		if err := addLayer(p, l); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// frame pins the plot axes to the dataset bounds with a small margin so
// every figure shows the same extent regardless of which layers it holds.
func (r *Renderer) frame(p *plot.Plot) {
	b := r.Bounds
	if b == nil || b.IsEmpty() {
		return
	}

	dx := b.Max(0) - b.Min(0)
	dy := b.Max(1) - b.Min(1)
	if dx <= 0 {
		dx = 1
	}
	if dy <= 0 {
		dy = 1
	}

	p.X.Min = b.Min(0) - dx*0.02
	p.X.Max = b.Max(0) + dx*0.02
	p.Y.Min = b.Min(1) - dy*0.02
	p.Y.Max = b.Max(1) + dy*0.02
}

// aspect is the height/width ratio of the dataset extent.
func (r *Renderer) aspect() float64 {
	b := r.Bounds
	if b == nil || b.IsEmpty() {
		return fallbackAspect
	}

	dx := b.Max(0) - b.Min(0)
	dy := b.Max(1) - b.Min(1)
	if dx <= 0 || dy <= 0 {
		return fallbackAspect
	}
	return dy / dx
}

// mapHeight is the canvas height of one map area, title included.
func (r *Renderer) mapHeight() vg.Length {
	return vg.Length(float64(r.Style.Width)*r.aspect()) + titleBand
}

// valueColorMap returns the color map of the first shaded layer, or nil for
// maps drawn entirely in flat colors.
func valueColorMap(m Map) palette.ColorMap {
	for _, l := range m.Layers {
		if l.ColorMap != nil {
			return l.ColorMap
		}
	}
	return nil
}

// colorBarPlot builds the horizontal value legend drawn under a shaded map.
func colorBarPlot(cm palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: cm})
	p.HideY()
	p.X.Padding = 0
	return p
}

// splitBar divides a canvas into the map area and a bottom strip of height
// barH for the color bar.
func splitBar(c draw.Canvas, barH vg.Length) (draw.Canvas, draw.Canvas) {
	h := c.Max.Y - c.Min.Y
	mapC := draw.Crop(c, 0, 0, barH, 0)
	barC := draw.Crop(c, 0, 0, 0, barH-h)
	return mapC, barC
}

// writePNG encodes the canvas to path.
func writePNG(canvas *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "render: encode %s", path)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "render: close %s", path)
	}
	return nil
}
