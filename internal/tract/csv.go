package tract

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// foodAccessRow mirrors the columns consumed from the food access CSV.
// Pointer fields decode to nil when the cell is empty.
type foodAccessRow struct {
	CensusTract string   `csv:"CensusTract"`
	Population  *float64 `csv:"POP2010"`
	Urban       *int     `csv:"Urban"`
	Rural       *int     `csv:"Rural"`
	LAPopHalf   *float64 `csv:"lapophalf"`
	LAPop10     *float64 `csv:"lapop10"`
	LALowIHalf  *float64 `csv:"lalowihalf"`
	LALowI10    *float64 `csv:"lalowi10"`
}

// requiredColumns must all appear in the CSV header.
var requiredColumns = []string{
	"CensusTract", "POP2010", "Urban", "Rural",
	"lapophalf", "lapop10", "lalowihalf", "lalowi10",
}

// ReadFoodAccess decodes the food access CSV keyed by tract ID. Duplicate
// keys keep the last row; the duplicate count is returned for logging.
func ReadFoodAccess(ctx context.Context, path string) (map[string]FoodAccess, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, eris.Wrapf(err, "tract: open csv %s", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, 0, eris.Wrapf(err, "tract: read csv header %s", path)
	}
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	for _, col := range requiredColumns {
		if !have[col] {
			return nil, 0, eris.Errorf("tract: csv %s has no %s column", path, col)
		}
	}

	dec, err := csvutil.NewDecoder(r, header...)
	if err != nil {
		return nil, 0, eris.Wrap(err, "tract: csv decoder")
	}

	rows := make(map[string]FoodAccess)
	duplicates := 0
	for {
		select {
		case <-ctx.Done():
			return nil, 0, eris.Wrap(ctx.Err(), "tract: read csv")
		default:
		}

		var row foodAccessRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, 0, eris.Wrapf(err, "tract: decode csv %s", path)
		}
		if row.CensusTract == "" {
			continue
		}
		if _, ok := rows[row.CensusTract]; ok {
			duplicates++
		}
		rows[row.CensusTract] = FoodAccess{
			Population: row.Population,
			Urban:      row.Urban != nil && *row.Urban == 1,
			Rural:      row.Rural != nil && *row.Rural == 1,
			LAPopHalf:  row.LAPopHalf,
			LAPop10:    row.LAPop10,
			LALowIHalf: row.LALowIHalf,
			LALowI10:   row.LALowI10,
		}
	}

	if duplicates > 0 {
		zap.L().Warn("tract: duplicate tract keys in csv",
			zap.String("path", path),
			zap.Int("duplicates", duplicates),
		)
	}

	return rows, duplicates, nil
}
