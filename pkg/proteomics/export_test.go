package proteomics

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	Level Level
	Text  string
}

type recorder struct {
	progress []float64
	messages []message
	trigger  []bool
}

func (r *recorder) SetProgress(percent float64) { r.progress = append(r.progress, percent) }
func (r *recorder) ShowStatus(level Level, text string) {
	r.messages = append(r.messages, message{level, text})
}
func (r *recorder) SetTriggerEnabled(enabled bool) { r.trigger = append(r.trigger, enabled) }

func (r *recorder) last() message {
	if len(r.messages) == 0 {
		return message{}
	}
	return r.messages[len(r.messages)-1]
}

var exportDate = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

const exportTSV = "Protein.Group\tGenes\tRun\tS1_G1\tS2_G1\n" +
	"P1\tA\tr1\t1.5\tNA\n" +
	"P2\tB\tr2\tNA\tna\n" +
	"P3\tC\tr3\t\t7\n"

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "Acme_Report_030524.xlsx", ReportFilename("Acme", exportDate))
	assert.Equal(t, "Report_Report_030524.xlsx", ReportFilename("", exportDate))
	assert.Equal(t, "Report_Report_030524.xlsx", ReportFilename("   ", exportDate))
	assert.Equal(t, "Lab_Report_123199.xlsx", ReportFilename(" Lab ", time.Date(1999, 12, 31, 0, 0, 0, 0, time.Local)))
}

func TestExport(t *testing.T) {
	var (
		dataset = mustParse(t, exportTSV)
		rec     = &recorder{}
	)
	data, filename, err := Export(dataset, []string{"G1", "G2"}, "Acme", exportDate, rec)
	require.NoError(t, err)
	assert.Equal(t, "Acme_Report_030524.xlsx", filename)
	assert.Equal(t, []float64{10, 20, 55, 90, 95, 100}, rec.progress)

	sheets, order, err := ReadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "G1"}, order)

	assert.Equal(t, [][]string{
		{"Protein.Group", "Genes", "Run", "S1_G1", "S2_G1"},
		{"P1", "A", "r1", "1.5", "NA"},
		{"P2", "B", "r2", "NA", "na"},
		{"P3", "C", "r3", "", "7"},
	}, sheets["All"])
	assert.Equal(t, [][]string{
		{"Protein.Group", "Genes", "S1_G1", "S2_G1"},
		{"P1", "A", "1.5", "NA"},
		{"P3", "C", "", "7"},
	}, sheets["G1"])
}

func TestExportProgressPerGroup(t *testing.T) {
	var rec = &recorder{}
	_, _, err := Export(mustParse(t, exportTSV), []string{"G2", "G1", "G3", "G4"}, "", exportDate, rec)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 37.5, 55, 72.5, 90, 95, 100}, rec.progress)
}

func TestExportNoData(t *testing.T) {
	var rec = &recorder{}
	data, filename, err := Export(nil, []string{"G1"}, "Acme", exportDate, rec)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, data)
	assert.Empty(t, filename)
	assert.Empty(t, rec.progress)

	_, _, err = Export(mustParse(t, exportTSV), nil, "Acme", exportDate, rec)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExportSheetNameError(t *testing.T) {
	// sheet names are limited to 31 characters
	var group = "a_sample_group_name_longer_than_excel_allows"
	var dataset = mustParse(t, "Genes\tx_"+group+"\nA\t1\n")
	data, _, err := Export(dataset, []string{group}, "", exportDate, nil)
	require.Error(t, err)
	assert.Nil(t, data)

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.NotNil(t, exportErr.Unwrap())
}

func TestBuildWorkbook(t *testing.T) {
	workbook, err := BuildWorkbook(mustParse(t, exportTSV), []string{"G2", "G1"}, nil)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{"All", "G1"}, workbook.Sheets)
	assert.Equal(t, []string{"G2"}, workbook.Skipped)
	require.Len(t, workbook.Summaries, 2)
	assert.Equal(t, 2, workbook.Summaries[1].Rows)
	assert.Equal(t, []string{"All", "G1"}, workbook.File.GetSheetList())
}

func TestExportSheetNameCollision(t *testing.T) {
	for _, tc := range []struct {
		name   string
		header string
		groups []string
	}{
		{"group named like the full sheet", "Genes\tx_All\n", []string{"All"}},
		{"group named like the full sheet in lower case", "Genes\tx_all\n", []string{"all"}},
		{"groups equal up to case", "Genes\tx_ctrl\tx_CTRL\n", []string{"ctrl", "CTRL"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var dataset = mustParse(t, tc.header+"A\t1\t2\n")
			data, filename, err := Export(dataset, tc.groups, "", exportDate, nil)
			assert.ErrorIs(t, err, ErrSheetExists)
			var exportErr *ExportError
			assert.ErrorAs(t, err, &exportErr)
			assert.Nil(t, data)
			assert.Empty(t, filename)
		})
	}
}
