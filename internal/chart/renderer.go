package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/i474232898/covid-charts/internal/covid"
)

// Renderer turns a country's history into a viewable dashboard.
type Renderer interface {
	RenderDashboard(w io.Writer, history *covid.CountryHistory) error
}

// EChartsRenderer renders the three-panel dashboard as a single HTML page:
// daily new cases, daily new deaths, and the cumulative totals plotted
// together.
type EChartsRenderer struct{}

// NewEChartsRenderer creates a new EChartsRenderer.
func NewEChartsRenderer() *EChartsRenderer {
	return &EChartsRenderer{}
}

const axisDateLayout = "2006-01-02"

func (r *EChartsRenderer) RenderDashboard(w io.Writer, history *covid.CountryHistory) error {
	dates := make([]string, 0, len(history.Cumulative))
	totalCases := make([]opts.LineData, 0, len(history.Cumulative))
	totalDeaths := make([]opts.LineData, 0, len(history.Cumulative))
	for _, p := range history.Cumulative {
		dates = append(dates, p.Date.Format(axisDateLayout))
		totalCases = append(totalCases, opts.LineData{Value: p.CumulativeCases})
		totalDeaths = append(totalDeaths, opts.LineData{Value: p.CumulativeDeaths})
	}

	dailyCases := make([]opts.LineData, 0, len(history.Daily))
	dailyDeaths := make([]opts.LineData, 0, len(history.Daily))
	for _, p := range history.Daily {
		dailyCases = append(dailyCases, opts.LineData{Value: p.NewCases})
		dailyDeaths = append(dailyDeaths, opts.LineData{Value: p.NewDeaths})
	}

	casesChart := newLineChart(
		fmt.Sprintf("Daily COVID-19 Cases in %s", history.Country), "Number of Cases")
	casesChart.SetXAxis(dates).
		AddSeries("Daily New Cases", dailyCases)

	deathsChart := newLineChart(
		fmt.Sprintf("Daily COVID-19 Deaths in %s", history.Country), "Number of Deaths")
	deathsChart.SetXAxis(dates).
		AddSeries("Daily New Deaths", dailyDeaths)

	totalsChart := newLineChart(
		fmt.Sprintf("Total COVID-19 Impact in %s", history.Country), "Cumulative Count")
	totalsChart.SetXAxis(dates).
		AddSeries("Total Cases", totalCases).
		AddSeries("Total Deaths", totalDeaths)

	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(casesChart, deathsChart, totalsChart)

	return page.Render(w)
}

func newLineChart(title, yAxisName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "380px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	return line
}

// WriteDashboardFile renders the dashboard to an HTML file at path.
func WriteDashboardFile(r Renderer, path string, history *covid.CountryHistory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart output: %w", err)
	}
	defer f.Close()

	return r.RenderDashboard(f, history)
}
