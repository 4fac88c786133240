package proteomics

import (
	"strings"
)

// Parse turns tab-separated text into a Dataset. Lines that are blank after
// trimming are skipped, the first remaining line is the header, and every
// other line becomes one Row. Missing trailing cells default to "" and
// cells beyond the header are ignored. Header names are used verbatim; when
// a name repeats, the row keeps its first position and the last value.
func Parse(text string) (*Dataset, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	var (
		title   = strings.Split(lines[0], "\t")
		dataset = &Dataset{
			Rows: make([]Row, 0, len(lines)-1),
		}
		seen = make(map[string]bool, len(title))
	)
	for _, key := range title {
		if !seen[key] {
			seen[key] = true
			dataset.Header = append(dataset.Header, key)
		}
	}

	for _, line := range lines[1:] {
		var (
			cells = strings.Split(line, "\t")
			row   = newRow(len(dataset.Header))
		)
		for i, key := range title {
			var value string
			if i < len(cells) {
				value = cells[i]
			}
			row.set(key, value)
		}
		dataset.Rows = append(dataset.Rows, row)
	}
	return dataset, nil
}
