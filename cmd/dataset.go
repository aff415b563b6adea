package main

import (
	"context"

	"github.com/cascadia-research/foodaccess/internal/tract"
)

// loadDataset reads and joins the configured inputs. Non-empty overrides
// replace the configured paths.
func loadDataset(ctx context.Context, geometryOverride, tabularOverride string) (*tract.Dataset, tract.Counts, error) {
	geometry := cfg.Data.GeometryPath
	if geometryOverride != "" {
		geometry = geometryOverride
	}
	tabular := cfg.Data.TabularPath
	if tabularOverride != "" {
		tabular = tabularOverride
	}

	opts := tract.BoundaryOptions{
		IDField:     cfg.Data.IDField,
		CountyField: cfg.Data.CountyField,
	}
	return tract.Load(ctx, geometry, tabular, opts)
}
