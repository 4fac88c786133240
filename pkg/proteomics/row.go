package proteomics

// Row is an ordered mapping from column name to cell value.
type Row struct {
	keys   []string
	values map[string]string
}

func newRow(size int) Row {
	return Row{
		keys:   make([]string, 0, size),
		values: make(map[string]string, size),
	}
}

// set keeps the position of an existing key and replaces its value.
func (row *Row) set(key, value string) {
	if _, ok := row.values[key]; !ok {
		row.keys = append(row.keys, key)
	}
	row.values[key] = value
}

// Keys returns the column names in order.
func (row Row) Keys() []string {
	return append([]string(nil), row.keys...)
}

func (row Row) Get(key string) (string, bool) {
	var value, ok = row.values[key]
	return value, ok
}

// Value returns the cell for key, or "" when the row has no such column.
func (row Row) Value(key string) string {
	return row.values[key]
}

func (row Row) Has(key string) bool {
	var _, ok = row.values[key]
	return ok
}

func (row Row) Len() int {
	return len(row.keys)
}

// Map returns a copy of the row as a plain map.
func (row Row) Map() map[string]string {
	var m = make(map[string]string, len(row.values))
	for k, v := range row.values {
		m[k] = v
	}
	return m
}

// Dataset is the parsed content of one uploaded file.
type Dataset struct {
	// Header holds the unique column names in first-occurrence order.
	Header []string
	Rows   []Row
}

func (dataset *Dataset) Len() int {
	if dataset == nil {
		return 0
	}
	return len(dataset.Rows)
}

// ColumnCount is the number of distinct columns.
func (dataset *Dataset) ColumnCount() int {
	if dataset == nil {
		return 0
	}
	return len(dataset.Header)
}

// SheetColumns returns the column order a sheet built from rows uses: the
// first row's keys, followed by any key first seen in a later row.
func SheetColumns(rows []Row) []string {
	var (
		seen    = make(map[string]bool)
		columns []string
	)
	for _, row := range rows {
		for _, key := range row.keys {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}
