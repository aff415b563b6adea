package render

import (
	"path/filepath"

	"github.com/cascadia-research/foodaccess/internal/access"
	"github.com/cascadia-research/foodaccess/internal/tract"
)

// Output file names for the standard figures.
const (
	StateMapFile            = "map.png"
	PopulationMapFile       = "population_map.png"
	CountyPopulationMapFile = "county_population_map.png"
	FoodAccessGridFile      = "county_food_access.png"
	LowAccessMapFile        = "low_access.png"
)

// StateMap draws every tract boundary in the highlight color.
func StateMap(d *tract.Dataset, s Style) Map {
	return Map{
		Title:  "Washington State",
		Layers: []Layer{UniformLayer(geoms(d.Tracts), s.Highlight)},
	}
}

// PopulationMap shades tracts with a known population over a background of
// all tract boundaries.
func PopulationMap(d *tract.Dataset, s Style) Map {
	known := d.WithPopulation()
	features := make([]Feature, 0, len(known))
	for _, t := range known {
		features = append(features, Feature{Geom: t.Geom, Value: *t.Access.Population})
	}
	min, max := valueScale(features)

	return Map{
		Title: "Washington Census Tract Populations",
		Layers: []Layer{
			UniformLayer(geoms(d.Tracts), s.Background),
			ValueLayer(features, defaultColorMap(), min, max),
		},
	}
}

// CountyPopulationMap shades county aggregates by their summed population.
// Counties without any populated tract show only as background.
func CountyPopulationMap(d *tract.Dataset, counties []access.County, s Style) Map {
	features := make([]Feature, 0, len(counties))
	for i := range counties {
		if counties[i].Populated > 0 {
			features = append(features, Feature{Geom: counties[i].Geom, Value: counties[i].Population})
		}
	}
	min, max := valueScale(features)

	return Map{
		Title: "Washington County Populations",
		Layers: []Layer{
			UniformLayer(geoms(d.Tracts), s.Background),
			ValueLayer(features, defaultColorMap(), min, max),
		},
	}
}

// gridPanel names one cell of the food access grid.
type gridPanel struct {
	Column access.Column
	Title  string
}

// gridPanels fixes which low-access count lands in which grid cell. Row 0
// is the top row: half-mile measures on top, 10-mile measures below, with
// the low-income variants on the right.
var gridPanels = [2][2]gridPanel{
	{
		{Column: access.ColLAPopHalf, Title: "Low Access: Half"},
		{Column: access.ColLALowIHalf, Title: "Low Access + Low Income: Half"},
	},
	{
		{Column: access.ColLAPop10, Title: "Low Access: 10"},
		{Column: access.ColLALowI10, Title: "Low Access + Low Income: 10"},
	},
}

// FoodAccessGrid builds the four county ratio panels. Every panel shares
// the fixed [0, 1] scale so shades are comparable across measures.
func FoodAccessGrid(d *tract.Dataset, counties []access.County, s Style) [2][2]Map {
	background := UniformLayer(geoms(d.Tracts), s.Background)

	var grid [2][2]Map
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			panel := gridPanels[row][col]

			features := make([]Feature, 0, len(counties))
			for i := range counties {
				if ratio, ok := counties[i].Ratio(panel.Column); ok {
					features = append(features, Feature{Geom: counties[i].Geom, Value: ratio})
				}
			}

			grid[row][col] = Map{
				Title:  panel.Title,
				Layers: []Layer{background, ValueLayer(features, defaultColorMap(), 0, 1)},
			}
		}
	}
	return grid
}

// LowAccessMap highlights tracts classified as low access over layers of
// all tracts and all tracts with joined data.
func LowAccessMap(d *tract.Dataset, s Style) Map {
	return Map{
		Title: "Low Access Census Tracts",
		Layers: []Layer{
			UniformLayer(geoms(d.Tracts), s.Background),
			UniformLayer(geoms(d.WithPopulation()), s.Known),
			UniformLayer(geoms(access.LowAccessTracts(d)), s.Highlight),
		},
	}
}

// WriteAll renders the five standard figures into dir.
func (r *Renderer) WriteAll(d *tract.Dataset, counties []access.County, dir string) error {
	if err := r.WriteMap(StateMap(d, r.Style), filepath.Join(dir, StateMapFile)); err != nil {
		return err
	}
	if err := r.WriteMap(PopulationMap(d, r.Style), filepath.Join(dir, PopulationMapFile)); err != nil {
		return err
	}
	if err := r.WriteMap(CountyPopulationMap(d, counties, r.Style), filepath.Join(dir, CountyPopulationMapFile)); err != nil {
		return err
	}
	if err := r.WriteGrid(FoodAccessGrid(d, counties, r.Style), filepath.Join(dir, FoodAccessGridFile)); err != nil {
		return err
	}
	if err := r.WriteMap(LowAccessMap(d, r.Style), filepath.Join(dir, LowAccessMapFile)); err != nil {
		return err
	}
	return nil
}
