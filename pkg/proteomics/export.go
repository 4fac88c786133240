package proteomics

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// AllSheet is the name of the sheet holding the full dataset.
const AllSheet = "All"

// progress milestones
const (
	progressStarted   = 10
	progressAllSheet  = 20
	progressGroupSpan = 70
	progressFilename  = 95
	progressDone      = 100
)

// Workbook is an export in progress: the excelize file plus what went in.
type Workbook struct {
	File      *excelize.File
	Sheets    []string
	Summaries []SheetSummary
	// Skipped lists the groups whose projection was empty.
	Skipped []string
}

func (workbook *Workbook) Close() error {
	return workbook.File.Close()
}

// ReportFilename returns {label}_Report_{MMDDYY}.xlsx for date, with
// "Report" standing in for a blank label.
func ReportFilename(label string, date time.Time) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "Report"
	}
	return fmt.Sprintf("%s_Report_%s.xlsx", label, date.Format("010206"))
}

// BuildWorkbook writes the All sheet and one sheet per group with a non-empty
// projection, in group order. Progress runs from 10 to 90 in one step per
// group whether or not the group got a sheet.
func BuildWorkbook(dataset *Dataset, groups []string, reporter Reporter) (*Workbook, error) {
	if dataset == nil || len(groups) == 0 {
		return nil, ErrNoData
	}
	if reporter == nil {
		reporter = NopReporter{}
	}

	reporter.SetProgress(progressStarted)
	reporter.ShowStatus(LevelInfo, "Processing data...")
	for col, owners := range OverlappingColumns(dataset.Header, groups) {
		slog.Warn("column matches several sample groups", "column", col, "groups", owners)
	}

	var workbook = &Workbook{File: excelize.NewFile()}
	var fail = func(err error) (*Workbook, error) {
		workbook.File.Close()
		return nil, &ExportError{Err: err}
	}

	if err := AddSheet(workbook.File, AllSheet, true); err != nil {
		return fail(err)
	}
	if err := WriteRows(workbook.File, AllSheet, dataset.Header, dataset.Rows); err != nil {
		return fail(err)
	}
	workbook.Sheets = append(workbook.Sheets, AllSheet)
	workbook.Summaries = append(workbook.Summaries, Summarize(AllSheet, dataset.Rows, ""))
	reporter.SetProgress(progressAllSheet)

	var increment = float64(progressGroupSpan) / float64(len(groups))
	for i, group := range groups {
		reporter.SetProgress(progressAllSheet + increment*float64(i+1))

		var rows = Project(dataset, group)
		if len(rows) == 0 {
			slog.Warn("no data found for sample group", "group", group)
			workbook.Skipped = append(workbook.Skipped, group)
			continue
		}
		if err := AddSheet(workbook.File, group, false); err != nil {
			return fail(fmt.Errorf("sheet %q: %w", group, err))
		}
		if err := WriteRows(workbook.File, group, SheetColumns(rows), rows); err != nil {
			return fail(fmt.Errorf("sheet %q: %w", group, err))
		}
		var summary = Summarize(group, rows, group)
		slog.Info("add sheet", slog.Group("sheet", "name", group, "rows", summary.Rows, "columns", summary.Columns))
		workbook.Sheets = append(workbook.Sheets, group)
		workbook.Summaries = append(workbook.Summaries, summary)
	}
	return workbook, nil
}

// Export builds and serializes the workbook for dataset and groups and
// names it after clientLabel and now. No bytes are returned on failure.
func Export(dataset *Dataset, groups []string, clientLabel string, now time.Time, reporter Reporter) (data []byte, filename string, err error) {
	data, filename, _, err = ExportSummary(dataset, groups, clientLabel, now, reporter)
	return data, filename, err
}

// ExportSummary is Export that also returns the summaries of the written
// sheets.
func ExportSummary(dataset *Dataset, groups []string, clientLabel string, now time.Time, reporter Reporter) ([]byte, string, []SheetSummary, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}
	var workbook, err = BuildWorkbook(dataset, groups, reporter)
	if err != nil {
		return nil, "", nil, err
	}
	defer workbook.Close()

	reporter.SetProgress(progressFilename)
	var filename = ReportFilename(clientLabel, now)

	buf, err := workbook.File.WriteToBuffer()
	if err != nil {
		return nil, "", nil, &ExportError{Err: err}
	}
	reporter.SetProgress(progressDone)
	slog.Info("export xlsx", "filename", filename, "sheets", workbook.Sheets, "bytes", buf.Len())
	return buf.Bytes(), filename, workbook.Summaries, nil
}
