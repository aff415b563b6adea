// Package report writes county summaries as console tables and XLSX
// workbooks.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cascadia-research/foodaccess/internal/access"
)

// WriteCountyTable prints one fixed-width row per county with a totals row
// at the bottom. Large numbers carry thousands separators.
func WriteCountyTable(w io.Writer, counties []access.County) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "%-14s %6s %8s %12s %12s %10s %10s\n",
		"COUNTY", "TRACTS", "MATCHED", "POPULATION", "LAPOPHALF", "LAPOP10", "LOW ACCESS")
	fmt.Fprintln(w, strings.Repeat("-", 78))

	var totals access.County
	for _, c := range counties {
		fmt.Fprintf(w, "%-14s %6d %8d %12s %12s %10s %10d\n",
			c.Name, c.Tracts, c.Matched,
			p.Sprintf("%d", int64(c.Population)),
			p.Sprintf("%d", int64(c.LAPopHalf)),
			p.Sprintf("%d", int64(c.LAPop10)),
			c.LowAccess)

		totals.Tracts += c.Tracts
		totals.Matched += c.Matched
		totals.Population += c.Population
		totals.LAPopHalf += c.LAPopHalf
		totals.LAPop10 += c.LAPop10
		totals.LowAccess += c.LowAccess
	}

	fmt.Fprintln(w, strings.Repeat("-", 78))
	fmt.Fprintf(w, "%-14s %6d %8d %12s %12s %10s %10d\n",
		"TOTAL", totals.Tracts, totals.Matched,
		p.Sprintf("%d", int64(totals.Population)),
		p.Sprintf("%d", int64(totals.LAPopHalf)),
		p.Sprintf("%d", int64(totals.LAPop10)),
		totals.LowAccess)
}
