package covid

import "time"

// DateLayout is the calendar layout disease.sh uses for its timeline keys,
// e.g. "1/22/20".
const DateLayout = "1/2/06"

// RawRecord is an unvalidated (date, cumulative cases, cumulative deaths)
// tuple as received from a data source. Date is a string in DateLayout.
type RawRecord struct {
	Date             string
	CumulativeCases  int64
	CumulativeDeaths int64
}

// TimePoint associates a calendar date with a country's cumulative totals as
// of that date.
type TimePoint struct {
	Date             time.Time `json:"date"`
	CumulativeCases  int64     `json:"cases"`
	CumulativeDeaths int64     `json:"deaths"`
}

// Series is a cumulative series, strictly ascending by date with at most one
// point per date. Built once by Normalize and never mutated afterwards.
type Series []TimePoint

// DailyPoint holds the day-over-day deltas for a single date.
type DailyPoint struct {
	Date      time.Time `json:"date"`
	NewCases  int64     `json:"newCases"`
	NewDeaths int64     `json:"newDeaths"`
}

// DerivedSeries is the daily-delta view of a Series, one entry per source
// point.
type DerivedSeries []DailyPoint

// CountryHistory bundles both views of a country's history for rendering.
type CountryHistory struct {
	Country    string        `json:"country"`
	Cumulative Series        `json:"cumulative"`
	Daily      DerivedSeries `json:"daily"`
}
