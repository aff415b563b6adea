package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cascadia-research/foodaccess/internal/access"
	"github.com/cascadia-research/foodaccess/internal/report"
)

var (
	exportGeometry string
	exportTabular  string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the county summary workbook",
	Long:  "Joins the data, aggregates it by county, and writes the summary as an XLSX workbook.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d, _, err := loadDataset(ctx, exportGeometry, exportTabular)
		if err != nil {
			return err
		}
		counties := access.DissolveByCounty(d)

		out := exportOut
		if out == "" {
			out = filepath.Join(cfg.Output.Dir, "county_summary.xlsx")
		}
		if err := report.WriteWorkbook(counties, out); err != nil {
			return err
		}

		zap.L().Info("workbook written", zap.String("path", out), zap.Int("counties", len(counties)))
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportGeometry, "geometry", "", "tract shapefile path (overrides config)")
	exportCmd.Flags().StringVar(&exportTabular, "tabular", "", "food access CSV path (overrides config)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "workbook path (default <output dir>/county_summary.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
