package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cascadia-research/foodaccess/internal/access"
	"github.com/cascadia-research/foodaccess/internal/render"
)

var (
	runGeometry string
	runTabular  string
	runOut      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Join the data and render every standard figure",
	Long: `Loads the tract shapefile, joins the food access CSV, prints the join
match rate to stdout, and writes the five standard figures to the output
directory.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d, counts, err := loadDataset(ctx, runGeometry, runTabular)
		if err != nil {
			return err
		}

		fmt.Println(access.MatchRate(d))

		counties := access.DissolveByCounty(d)
		zap.L().Info("dissolved counties",
			zap.Int("counties", len(counties)),
			zap.Int("tracts", counts.Boundaries),
			zap.Int("matched", counts.Matched),
		)

		style, err := render.LoadStyle(cfg.Render.StylePath)
		if err != nil {
			return err
		}

		outDir := runOut
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrapf(err, "create output dir %s", outDir)
		}

		r := render.New(style, d.Bounds())
		if err := r.WriteAll(d, counties, outDir); err != nil {
			return err
		}

		zap.L().Info("run complete", zap.String("dir", outDir))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runGeometry, "geometry", "", "tract shapefile path (overrides config)")
	runCmd.Flags().StringVar(&runTabular, "tabular", "", "food access CSV path (overrides config)")
	runCmd.Flags().StringVar(&runOut, "out", "", "output directory (overrides config)")
	rootCmd.AddCommand(runCmd)
}
