package covid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	records []RawRecord
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context, country string) ([]RawRecord, error) {
	return s.records, s.err
}

func TestServiceCountryHistory(t *testing.T) {
	svc := NewService(&stubSource{records: []RawRecord{
		{Date: "1/2/21", CumulativeCases: 15, CumulativeDeaths: 2},
		{Date: "1/1/21", CumulativeCases: 10, CumulativeDeaths: 1},
	}})

	history, err := svc.CountryHistory(context.Background(), "USA")
	require.NoError(t, err)

	assert.Equal(t, "USA", history.Country)
	require.Len(t, history.Cumulative, 2)
	require.Len(t, history.Daily, 2)
	assert.True(t, history.Cumulative[0].Date.Before(history.Cumulative[1].Date))
	assert.Equal(t, int64(5), history.Daily[1].NewCases)
}

func TestServicePropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("upstream unavailable")
	svc := NewService(&stubSource{err: fetchErr})

	_, err := svc.CountryHistory(context.Background(), "USA")
	assert.ErrorIs(t, err, fetchErr)
}

func TestServicePropagatesEmptyInput(t *testing.T) {
	svc := NewService(&stubSource{})

	_, err := svc.CountryHistory(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
