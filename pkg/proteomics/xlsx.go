package proteomics

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SetRow writes value into sheet starting at (col, row), both 1-based.
func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) error {
	var cellName, err = excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return xlsx.SetSheetRow(sheet, cellName, &value)
}

// AddSheet creates sheet, reusing the default first sheet when the workbook
// has no named sheet yet. Sheet names are case-insensitive in a workbook, so
// a name equal to an existing sheet up to case is ErrSheetExists.
func AddSheet(xlsx *excelize.File, sheet string, first bool) error {
	if first {
		return xlsx.SetSheetName(xlsx.GetSheetName(0), sheet)
	}
	for _, name := range xlsx.GetSheetList() {
		if strings.EqualFold(name, sheet) {
			return fmt.Errorf("%w: %q", ErrSheetExists, name)
		}
	}
	var _, err = xlsx.NewSheet(sheet)
	return err
}

// WriteRows writes a header line of columns and one line per row below it.
func WriteRows(xlsx *excelize.File, sheet string, columns []string, rows []Row) error {
	var title = make([]interface{}, len(columns))
	for i, col := range columns {
		title[i] = col
	}
	if err := SetRow(xlsx, sheet, 1, 1, title); err != nil {
		return err
	}
	for i, row := range rows {
		var line = make([]interface{}, len(columns))
		for j, col := range columns {
			line[j] = row.Value(col)
		}
		if err := SetRow(xlsx, sheet, 1, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

// ReadWorkbook parses xlsx data and returns every sheet as rows of strings,
// keyed by sheet name, plus the sheet order.
func ReadWorkbook(r io.Reader) (sheets map[string][][]string, order []string, err error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer xlsx.Close()

	sheets = make(map[string][][]string)
	order = xlsx.GetSheetList()
	for _, sheet := range order {
		rows, err := xlsx.GetRows(sheet)
		if err != nil {
			return nil, nil, err
		}
		sheets[sheet] = rows
	}
	return sheets, order, nil
}
