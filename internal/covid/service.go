package covid

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Service ties a DataSource to the series transformation.
type Service struct {
	source DataSource
}

// NewService creates a new Service.
func NewService(source DataSource) *Service {
	return &Service{source: source}
}

// CountryHistory fetches the raw history for a country and produces both the
// cumulative and the derived daily view.
func (s *Service) CountryHistory(ctx context.Context, country string) (*CountryHistory, error) {
	records, err := s.source.Fetch(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("fetching history for %s: %w", country, err)
	}

	series, err := Normalize(records)
	if err != nil {
		return nil, fmt.Errorf("normalizing history for %s: %w", country, err)
	}

	log.Debug().Str("country", country).Str("source", s.source.Name()).
		Int("points", len(series)).Msg("country history assembled")

	return &CountryHistory{
		Country:    country,
		Cumulative: series,
		Daily:      DeriveDaily(series),
	}, nil
}
