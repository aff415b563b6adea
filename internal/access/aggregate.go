package access

import (
	"sort"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/cascadia-research/foodaccess/internal/tract"
)

// Column names one of the four low access count columns.
type Column string

// The four count columns, in the order the figures use them.
const (
	ColLAPopHalf  Column = "lapophalf"
	ColLAPop10    Column = "lapop10"
	ColLALowIHalf Column = "lalowihalf"
	ColLALowI10   Column = "lalowi10"
)

// Columns returns the count columns in their canonical order.
func Columns() []Column {
	return []Column{ColLAPopHalf, ColLAPop10, ColLALowIHalf, ColLALowI10}
}

// County aggregates the tracts of one county. Numeric columns are sums over
// tracts with known values; Geom collects every tract polygon (tracts
// partition counties, so the collection is the county shape).
type County struct {
	Name       string
	Tracts     int
	Matched    int
	Populated  int // tracts with a known population
	LowAccess  int // low access tracts among the populated ones
	Population float64
	LAPopHalf  float64
	LAPop10    float64
	LALowIHalf float64
	LALowI10   float64
	Geom       *geom.MultiPolygon
}

// Count returns the county's summed value for col.
func (c *County) Count(col Column) float64 {
	switch col {
	case ColLAPopHalf:
		return c.LAPopHalf
	case ColLAPop10:
		return c.LAPop10
	case ColLALowIHalf:
		return c.LALowIHalf
	case ColLALowI10:
		return c.LALowI10
	}
	return 0
}

// Ratio recomputes count/population for the county. Per-tract ratios do not
// sum, so ratios are always derived after aggregation; ok is false when the
// county has no known population.
func (c *County) Ratio(col Column) (float64, bool) {
	if c.Population <= 0 {
		return 0, false
	}
	return c.Count(col) / c.Population, true
}

// DissolveByCounty groups tracts by county name, summing numeric columns
// over known values and collecting tract polygons into one geometry per
// county. Counties come back sorted by name.
func DissolveByCounty(d *tract.Dataset) []County {
	byName := make(map[string]*County)

	for _, t := range d.Tracts {
		c, ok := byName[t.County]
		if !ok {
			c = &County{Name: t.County, Geom: geom.NewMultiPolygon(geom.XY)}
			byName[t.County] = c
		}
		c.Tracts++

		if t.Geom != nil {
			for i := 0; i < t.Geom.NumPolygons(); i++ {
				if err := c.Geom.Push(t.Geom.Polygon(i)); err != nil {
					zap.L().Debug("access: skipping polygon in dissolve",
						zap.String("county", t.County),
						zap.Error(err),
					)
				}
			}
		}

		if t.Access == nil {
			continue
		}
		c.Matched++
		addKnown(&c.Population, t.Access.Population)
		addKnown(&c.LAPopHalf, t.Access.LAPopHalf)
		addKnown(&c.LAPop10, t.Access.LAPop10)
		addKnown(&c.LALowIHalf, t.Access.LALowIHalf)
		addKnown(&c.LALowI10, t.Access.LALowI10)
		if t.Access.Population != nil {
			c.Populated++
			if IsLowAccess(t.Access) {
				c.LowAccess++
			}
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]County, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	return out
}

// addKnown adds v to sum when the value is known.
func addKnown(sum *float64, v *float64) {
	if v != nil {
		*sum += *v
	}
}
