package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cascadia-research/foodaccess/internal/access"
	"github.com/cascadia-research/foodaccess/internal/report"
)

var (
	statsGeometry string
	statsTabular  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the join match rate and county summary table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d, counts, err := loadDataset(ctx, statsGeometry, statsTabular)
		if err != nil {
			return err
		}

		fmt.Println(access.MatchRate(d))

		zap.L().Info("join complete",
			zap.Int("boundaries", counts.Boundaries),
			zap.Int("rows", counts.Rows),
			zap.Int("matched", counts.Matched),
			zap.Int("duplicates", counts.Duplicates),
			zap.Int("low_access", len(access.LowAccessTracts(d))),
		)

		report.WriteCountyTable(os.Stdout, access.DissolveByCounty(d))
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsGeometry, "geometry", "", "tract shapefile path (overrides config)")
	statsCmd.Flags().StringVar(&statsTabular, "tabular", "", "food access CSV path (overrides config)")
	rootCmd.AddCommand(statsCmd)
}
