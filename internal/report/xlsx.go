package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/cascadia-research/foodaccess/internal/access"
)

// countColumns orders the workbook's count and share columns.
var countColumns = access.Columns()

// WriteWorkbook saves the county summary as an XLSX workbook with a summary
// sheet and a classification sheet.
func WriteWorkbook(counties []access.County, path string) error {
	f := xlsx.NewFile()

	if err := addSummarySheet(f, counties); err != nil {
		return err
	}
	if err := addClassificationSheet(f, counties); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save workbook %s", path)
	}
	return nil
}

// addSummarySheet writes one row per county: tract counts, the summed
// population and low-access counts, and the recomputed share of each count
// against the county population. Shares without a population stay blank.
func addSummarySheet(f *xlsx.File, counties []access.County) error {
	sheet, err := f.AddSheet("County Summary")
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"County", "Tracts", "Matched", "POP2010"} {
		header.AddCell().SetString(h)
	}
	for _, col := range countColumns {
		header.AddCell().SetString(string(col))
	}
	for _, col := range countColumns {
		header.AddCell().SetString(string(col) + "_share")
	}

	for _, c := range counties {
		row := sheet.AddRow()
		row.AddCell().SetString(c.Name)
		row.AddCell().SetInt(c.Tracts)
		row.AddCell().SetInt(c.Matched)
		row.AddCell().SetFloatWithFormat(c.Population, "#,##0")
		for _, col := range countColumns {
			row.AddCell().SetFloatWithFormat(c.Count(col), "#,##0")
		}
		for _, col := range countColumns {
			cell := row.AddCell()
			if ratio, ok := c.Ratio(col); ok {
				cell.SetFloatWithFormat(ratio, "0.000")
			}
		}
	}
	return nil
}

// addClassificationSheet writes the populated and low-access tract counts
// per county.
func addClassificationSheet(f *xlsx.File, counties []access.County) error {
	sheet, err := f.AddSheet("Classification")
	if err != nil {
		return eris.Wrap(err, "report: add classification sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"County", "Populated Tracts", "Low Access Tracts", "Low Access Share"} {
		header.AddCell().SetString(h)
	}

	for _, c := range counties {
		row := sheet.AddRow()
		row.AddCell().SetString(c.Name)
		row.AddCell().SetInt(c.Populated)
		row.AddCell().SetInt(c.LowAccess)

		cell := row.AddCell()
		if c.Populated > 0 {
			cell.SetFloatWithFormat(float64(c.LowAccess)/float64(c.Populated), "0.000")
		}
	}
	return nil
}
