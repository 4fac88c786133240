package proteomics

import "strings"

// DescriptiveColumns are copied into every sample group sheet when present.
var DescriptiveColumns = []string{
	"Protein.Group",
	"Protein.Names",
	"Genes",
	"First.Protein.Description",
	"N.Sequences",
	"N.Proteotypic.Sequences",
}

// IsMissing reports whether a measurement cell counts as empty. Only "",
// "NA" and "na" are missing; other spellings such as "Na" are values.
func IsMissing(value string) bool {
	return value == "" || value == "NA" || value == "na"
}

// Project builds the rows of the sheet for group. Each output row holds the
// descriptive columns the source row has, then every column whose name
// contains group (case-sensitive substring). Rows whose group columns are
// all missing are dropped.
func Project(dataset *Dataset, group string) []Row {
	if dataset == nil {
		return nil
	}
	var rows []Row
	for _, src := range dataset.Rows {
		var row = newRow(len(DescriptiveColumns))
		for _, col := range DescriptiveColumns {
			if value, ok := src.Get(col); ok {
				row.set(col, value)
			}
		}
		for _, key := range src.keys {
			if strings.Contains(key, group) {
				row.set(key, src.values[key])
			}
		}
		if hasGroupValue(row, group) {
			rows = append(rows, row)
		}
	}
	return rows
}

func hasGroupValue(row Row, group string) bool {
	for _, key := range row.keys {
		if strings.Contains(key, group) && !IsMissing(row.values[key]) {
			return true
		}
	}
	return false
}
