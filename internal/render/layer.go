package render

import (
	"image/color"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cascadia-research/foodaccess/internal/tract"
)

// Feature is one drawable geometry with its choropleth value.
type Feature struct {
	Geom  *geom.MultiPolygon
	Value float64
}

// Layer is a set of polygons drawn either in one flat color or shaded per
// feature through a color map. Layers stack in order, first drawn lowest.
type Layer struct {
	Features []Feature
	Fill     color.Color      // uniform fill, used when ColorMap is nil
	ColorMap palette.ColorMap // per-feature shading over [Min, Max]
}

// UniformLayer fills every geometry with one color.
func UniformLayer(geoms []*geom.MultiPolygon, fill color.Color) Layer {
	features := make([]Feature, 0, len(geoms))
	for _, g := range geoms {
		features = append(features, Feature{Geom: g})
	}
	return Layer{Features: features, Fill: fill}
}

// ValueLayer shades each feature by its value through cm scaled to
// [min, max]. A degenerate scale is widened so the map stays valid.
func ValueLayer(features []Feature, cm palette.ColorMap, min, max float64) Layer {
	if max <= min {
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return Layer{Features: features, ColorMap: cm}
}

// addLayer converts a layer's geometries into filled polygon plotters on p.
func addLayer(p *plot.Plot, l Layer) error {
	for _, f := range l.Features {
		if f.Geom == nil {
			continue
		}

		fill := l.Fill
		if l.ColorMap != nil {
			c, err := colorAt(l.ColorMap, f.Value)
			if err != nil {
				return err
			}
			fill = c
		}

		for i := 0; i < f.Geom.NumPolygons(); i++ {
			poly := f.Geom.Polygon(i)
			rings := make([]plotter.XYer, 0, poly.NumLinearRings())
			for j := 0; j < poly.NumLinearRings(); j++ {
				rings = append(rings, ringXYs(poly.LinearRing(j)))
			}

			pg, err := plotter.NewPolygon(rings...)
			if err != nil {
				return eris.Wrap(err, "render: build polygon")
			}
			pg.Color = fill
			// Stroke with the fill color so adjacent fills meet without
			// visible seams.
			pg.LineStyle.Color = fill
			pg.LineStyle.Width = vg.Points(0.5)
			p.Add(pg)
		}
	}
	return nil
}

// ringXYs flattens a linear ring into plot points.
func ringXYs(r *geom.LinearRing) plotter.XYs {
	flat := r.FlatCoords()
	stride := r.Stride()
	xys := make(plotter.XYs, 0, len(flat)/stride)
	for i := 0; i+1 < len(flat); i += stride {
		xys = append(xys, plotter.XY{X: flat[i], Y: flat[i+1]})
	}
	return xys
}

// geoms collects the geometries of a tract slice.
func geoms(tracts []tract.Tract) []*geom.MultiPolygon {
	out := make([]*geom.MultiPolygon, 0, len(tracts))
	for _, t := range tracts {
		out = append(out, t.Geom)
	}
	return out
}
