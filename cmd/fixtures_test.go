//go:build !integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/require"

	"github.com/cascadia-research/foodaccess/internal/config"
)

// writeFixtures writes a two-tract shapefile and a CSV matching one of the
// tracts, returning both paths.
func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	shpPath := filepath.Join(dir, "tracts.shp")
	w, err := shp.Create(shpPath, shp.POLYGON)
	require.NoError(t, err)
	w.SetFields([]shp.Field{
		shp.StringField("CTIDFP00", 12),
		shp.StringField("COUNTYFP00", 12),
	})

	records := []struct {
		id     string
		county string
		shape  *shp.Polygon
	}{
		{id: "53033000100", county: "033", shape: fixtureSquare(-122.3, 47.5, 0.1)},
		{id: "53047970200", county: "047", shape: fixtureSquare(-119.5, 48.3, 0.2)},
	}
	for n, rec := range records {
		w.Write(rec.shape)
		w.WriteAttribute(n, 0, rec.id)
		w.WriteAttribute(n, 1, rec.county)
	}
	w.Close()

	csvPath := filepath.Join(dir, "food_access.csv")
	csv := `CensusTract,Urban,Rural,POP2010,lapophalf,lapop10,lalowihalf,lalowi10
53033000100,1,0,6600,1800,0,500,0
`
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0644))

	return shpPath, csvPath
}

func fixtureSquare(x, y, size float64) *shp.Polygon {
	pts := []shp.Point{
		{X: x, Y: y},
		{X: x, Y: y + size},
		{X: x + size, Y: y + size},
		{X: x + size, Y: y},
		{X: x, Y: y},
	}
	return &shp.Polygon{
		NumParts:  1,
		NumPoints: int32(len(pts)),
		Parts:     []int32{0},
		Points:    pts,
	}
}

// testConfig builds a config pointing at the fixture paths.
func testConfig(geometry, tabular, outDir string) *config.Config {
	return &config.Config{
		Data: config.DataConfig{
			GeometryPath: geometry,
			TabularPath:  tabular,
			IDField:      "CTIDFP00",
			CountyField:  "COUNTYFP00",
		},
		Output: config.OutputConfig{Dir: outDir},
	}
}
