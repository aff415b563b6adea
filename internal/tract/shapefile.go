package tract

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// BoundaryOptions name the shapefile attribute fields to read.
type BoundaryOptions struct {
	IDField     string // tract identifier, e.g. CTIDFP00
	CountyField string // county code or name, e.g. COUNTYFP00
}

// Boundary is one tract polygon straight out of the shapefile.
type Boundary struct {
	ID     string
	County string
	Geom   *geom.MultiPolygon
}

// ReadBoundaries reads every polygon record from a tract shapefile. Records
// with a blank ID or no usable geometry are skipped and counted; a missing
// attribute field is an error.
func ReadBoundaries(path string, opts BoundaryOptions) ([]Boundary, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "tract: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	// Build field name → index map.
	fields := reader.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToLower(name)] = i
	}

	idIdx, ok := fieldIdx[strings.ToLower(opts.IDField)]
	if !ok {
		return nil, eris.Errorf("tract: shapefile %s has no %s field", path, opts.IDField)
	}
	countyIdx, ok := fieldIdx[strings.ToLower(opts.CountyField)]
	if !ok {
		return nil, eris.Errorf("tract: shapefile %s has no %s field", path, opts.CountyField)
	}

	var boundaries []Boundary
	var skipped int

	for reader.Next() {
		_, shape := reader.Shape()

		id := attribute(reader, idIdx)
		if id == "" {
			skipped++
			continue
		}

		poly, ok := shape.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}
		mp := multiPolygon(poly)
		if mp == nil {
			skipped++
			continue
		}

		boundaries = append(boundaries, Boundary{
			ID:     id,
			County: CountyName(attribute(reader, countyIdx)),
			Geom:   mp,
		})
	}
	if err := reader.Err(); err != nil {
		return nil, eris.Wrapf(err, "tract: read shapefile %s", path)
	}

	if skipped > 0 {
		zap.L().Debug("tract: skipped shapefile records",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return boundaries, nil
}

// attribute returns the current record's attribute with DBF padding removed.
func attribute(r *shp.Reader, idx int) string {
	return strings.TrimSpace(strings.TrimRight(r.Attribute(idx), "\x00"))
}
