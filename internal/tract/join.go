package tract

import (
	"context"

	"go.uber.org/zap"
)

// Counts reports what the loader read and joined.
type Counts struct {
	Boundaries int
	Rows       int
	Duplicates int
	Matched    int
}

// Load reads both inputs and left-joins food access attributes onto tract
// boundaries by tract ID. Every boundary is kept; boundaries without a
// matching CSV row keep a nil Access.
func Load(ctx context.Context, geometryPath, tabularPath string, opts BoundaryOptions) (*Dataset, Counts, error) {
	log := zap.L().With(zap.String("component", "tract"))

	boundaries, err := ReadBoundaries(geometryPath, opts)
	if err != nil {
		return nil, Counts{}, err
	}

	rows, duplicates, err := ReadFoodAccess(ctx, tabularPath)
	if err != nil {
		return nil, Counts{}, err
	}

	tracts := make([]Tract, 0, len(boundaries))
	matched := 0
	for _, b := range boundaries {
		t := Tract{ID: b.ID, County: b.County, Geom: b.Geom}
		if fa, ok := rows[b.ID]; ok {
			t.Access = &fa
			matched++
		}
		tracts = append(tracts, t)
	}

	counts := Counts{
		Boundaries: len(boundaries),
		Rows:       len(rows),
		Duplicates: duplicates,
		Matched:    matched,
	}
	log.Info("loaded tract dataset",
		zap.String("geometry", geometryPath),
		zap.String("tabular", tabularPath),
		zap.Int("boundaries", counts.Boundaries),
		zap.Int("rows", counts.Rows),
		zap.Int("matched", counts.Matched),
	)

	return &Dataset{Tracts: tracts}, counts, nil
}
