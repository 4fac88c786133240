package proteomics

import (
	"strings"

	"github.com/montanaflynn/stats"
)

// SheetSummary describes one sheet of an exported workbook.
type SheetSummary struct {
	Sheet   string
	Rows    int
	Columns int
	// MeanFill is the mean, over rows, of the share of measured cells that
	// are not missing.
	MeanFill float64
}

// Summarize computes the SheetSummary of rows. When group is empty every
// column is a measured column, otherwise only the columns containing group.
func Summarize(sheet string, rows []Row, group string) SheetSummary {
	var (
		summary = SheetSummary{
			Sheet:   sheet,
			Rows:    len(rows),
			Columns: len(SheetColumns(rows)),
		}
		fill []float64
	)
	for _, row := range rows {
		var measured, present int
		for _, key := range row.keys {
			if group != "" && !strings.Contains(key, group) {
				continue
			}
			measured++
			if !IsMissing(row.values[key]) {
				present++
			}
		}
		if measured > 0 {
			fill = append(fill, float64(present)/float64(measured))
		}
	}
	if mean, err := stats.Mean(fill); err == nil {
		summary.MeanFill = mean
	}
	return summary
}
