package proteomics

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chartSummaries = []SheetSummary{
	{Sheet: "All", Rows: 10, Columns: 8},
	{Sheet: "CTRL_Saline", Rows: 4, Columns: 4},
}

func TestRenderRowsChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRowsChart(&buf, "Acme_Report_030524.xlsx", chartSummaries))
	assert.Contains(t, buf.String(), "CTRL_Saline")
	assert.Contains(t, buf.String(), "rows per sheet")
	assert.Len(t, GenerateBarItems(chartSummaries), 2)
}

func TestPlotRowsChart(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "rows.png")
	require.NoError(t, PlotRowsChart(path, "rows", chartSummaries))
	assert.FileExists(t, path)
}
