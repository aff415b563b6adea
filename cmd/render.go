package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/cascadia-research/foodaccess/internal/access"
	"github.com/cascadia-research/foodaccess/internal/render"
)

var (
	renderGeometry string
	renderTabular  string
	renderOut      string
	renderStyle    string
)

var renderCmd = &cobra.Command{
	Use:   "render [figure...]",
	Short: "Render the standard figures",
	Long: `Renders the standard figures. With no arguments every figure is written;
otherwise only the named outputs:

  map.png                    state outline
  population_map.png         tract populations
  county_population_map.png  county populations
  county_food_access.png     low access ratio grid
  low_access.png             low access tracts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d, _, err := loadDataset(ctx, renderGeometry, renderTabular)
		if err != nil {
			return err
		}
		counties := access.DissolveByCounty(d)

		stylePath := renderStyle
		if stylePath == "" {
			stylePath = cfg.Render.StylePath
		}
		style, err := render.LoadStyle(stylePath)
		if err != nil {
			return err
		}

		outDir := renderOut
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrapf(err, "create output dir %s", outDir)
		}

		r := render.New(style, d.Bounds())
		if len(args) == 0 {
			return r.WriteAll(d, counties, outDir)
		}

		for _, name := range args {
			path := filepath.Join(outDir, name)
			switch name {
			case render.StateMapFile:
				err = r.WriteMap(render.StateMap(d, style), path)
			case render.PopulationMapFile:
				err = r.WriteMap(render.PopulationMap(d, style), path)
			case render.CountyPopulationMapFile:
				err = r.WriteMap(render.CountyPopulationMap(d, counties, style), path)
			case render.FoodAccessGridFile:
				err = r.WriteGrid(render.FoodAccessGrid(d, counties, style), path)
			case render.LowAccessMapFile:
				err = r.WriteMap(render.LowAccessMap(d, style), path)
			default:
				return eris.Errorf("unknown figure %s", name)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderGeometry, "geometry", "", "tract shapefile path (overrides config)")
	renderCmd.Flags().StringVar(&renderTabular, "tabular", "", "food access CSV path (overrides config)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output directory (overrides config)")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "style YAML path (overrides config)")
	rootCmd.AddCommand(renderCmd)
}
