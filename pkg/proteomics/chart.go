package proteomics

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func GenerateBarItems(summaries []SheetSummary) []opts.BarData {
	var items = make([]opts.BarData, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, opts.BarData{Value: s.Rows})
	}
	return items
}

// RenderRowsChart renders an html bar chart of the row count of every sheet.
func RenderRowsChart(w io.Writer, title string, summaries []SheetSummary) error {
	var (
		bar    = charts.NewBar()
		sheets = make([]string, 0, len(summaries))
	)
	for _, s := range summaries {
		sheets = append(sheets, s.Sheet)
	}
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "rows per sheet",
		}),
	)
	bar.SetXAxis(sheets).AddSeries("rows", GenerateBarItems(summaries))
	return bar.Render(w)
}

// PlotRowsChart saves a png bar chart of the row count of every sheet.
func PlotRowsChart(path, title string, summaries []SheetSummary) error {
	var (
		p      = plot.New()
		values = make(plotter.Values, 0, len(summaries))
		names  = make([]string, 0, len(summaries))
	)
	p.Title.Text = title
	p.Y.Label.Text = "rows"
	for _, s := range summaries {
		values = append(values, float64(s.Rows))
		names = append(names, s.Sheet)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)
	return p.Save(vg.Length(len(names)+2)*vg.Centimeter*2, 10*vg.Centimeter, path)
}
