// Package tract loads census tract boundaries from TIGER/Line shapefiles,
// joins food access attributes from the USDA research atlas CSV, and holds
// the merged dataset in memory for the rest of the pipeline.
package tract

import "github.com/twpayne/go-geom"

// Tract is one census tract boundary with its optional food access
// attributes. Access is nil when the tabular data had no row for the tract.
type Tract struct {
	ID     string
	County string
	Geom   *geom.MultiPolygon
	Access *FoodAccess
}

// FoodAccess carries the tabular attributes for one tract. Pointer fields
// are nil when the source cell was empty.
type FoodAccess struct {
	Population *float64
	Urban      bool
	Rural      bool
	LAPopHalf  *float64
	LAPop10    *float64
	LALowIHalf *float64
	LALowI10   *float64
}

// Dataset is the joined tract dataset for one state. It is built once per
// run and never mutated; derived views are returned as new slices.
type Dataset struct {
	Tracts []Tract
}

// Matched counts tracts that joined to a food access row.
func (d *Dataset) Matched() int {
	n := 0
	for i := range d.Tracts {
		if d.Tracts[i].Access != nil {
			n++
		}
	}
	return n
}

// WithPopulation returns the tracts whose 2010 population is known.
func (d *Dataset) WithPopulation() []Tract {
	var out []Tract
	for _, t := range d.Tracts {
		if t.Access != nil && t.Access.Population != nil {
			out = append(out, t)
		}
	}
	return out
}

// Bounds returns the box covering every tract geometry.
func (d *Dataset) Bounds() *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	for _, t := range d.Tracts {
		if t.Geom != nil {
			b = b.Extend(t.Geom)
		}
	}
	return b
}
