package covid

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrEmptyInput is returned by Normalize when there are no records to work with.
var ErrEmptyInput = errors.New("no records for requested country")

// ParseError reports a date string that does not match DateLayout.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateDateError reports two records sharing the same calendar date.
type DuplicateDateError struct {
	Date time.Time
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("duplicate record for date %s", e.Date.Format("2006-01-02"))
}

// Normalize parses and sorts raw records into a Series.
//
// Records may arrive in any order; the output is strictly ascending by date.
// Duplicate dates are rejected rather than resolved: the upstream keys its
// timeline by date, so a duplicate means the input was assembled wrong.
func Normalize(records []RawRecord) (Series, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	series := make(Series, 0, len(records))
	for _, r := range records {
		date, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			return nil, &ParseError{Value: r.Date, Err: err}
		}
		series = append(series, TimePoint{
			Date:             date,
			CumulativeCases:  r.CumulativeCases,
			CumulativeDeaths: r.CumulativeDeaths,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	for i := 1; i < len(series); i++ {
		if series[i].Date.Equal(series[i-1].Date) {
			return nil, &DuplicateDateError{Date: series[i].Date}
		}
	}

	return series, nil
}

// DeriveDaily computes day-over-day deltas from a normalized Series.
//
// The first entry's delta equals its own cumulative value, i.e. the prior
// total is taken to be zero. A cumulative total lower than the previous day's
// yields a negative delta; it is passed through unchanged so that upstream
// data corrections stay visible instead of being clamped away.
func DeriveDaily(series Series) DerivedSeries {
	derived := make(DerivedSeries, 0, len(series))

	var prevCases, prevDeaths int64
	for _, p := range series {
		derived = append(derived, DailyPoint{
			Date:      p.Date,
			NewCases:  p.CumulativeCases - prevCases,
			NewDeaths: p.CumulativeDeaths - prevDeaths,
		})
		prevCases = p.CumulativeCases
		prevDeaths = p.CumulativeDeaths
	}

	return derived
}
