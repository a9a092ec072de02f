package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/covid-charts/internal/covid"
)

func sampleHistory(t *testing.T) *covid.CountryHistory {
	t.Helper()

	series, err := covid.Normalize([]covid.RawRecord{
		{Date: "1/1/21", CumulativeCases: 10, CumulativeDeaths: 1},
		{Date: "1/2/21", CumulativeCases: 15, CumulativeDeaths: 2},
		{Date: "1/3/21", CumulativeCases: 21, CumulativeDeaths: 2},
	})
	require.NoError(t, err)

	return &covid.CountryHistory{
		Country:    "USA",
		Cumulative: series,
		Daily:      covid.DeriveDaily(series),
	}
}

func TestRenderDashboardContainsAllPanels(t *testing.T) {
	var buf bytes.Buffer

	r := NewEChartsRenderer()
	require.NoError(t, r.RenderDashboard(&buf, sampleHistory(t)))

	html := buf.String()
	assert.Contains(t, html, "Daily COVID-19 Cases in USA")
	assert.Contains(t, html, "Daily COVID-19 Deaths in USA")
	assert.Contains(t, html, "Total COVID-19 Impact in USA")
	assert.Contains(t, html, "Total Cases")
	assert.Contains(t, html, "Total Deaths")
	assert.Contains(t, html, time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
}

func TestWriteDashboardFile(t *testing.T) {
	path := t.TempDir() + "/dashboard.html"

	err := WriteDashboardFile(NewEChartsRenderer(), path, sampleHistory(t))
	require.NoError(t, err)

	assert.FileExists(t, path)
}
