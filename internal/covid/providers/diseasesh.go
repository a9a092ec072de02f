package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/i474232898/covid-charts/internal/covid"
)

// ErrCountryNotFound is returned when disease.sh has no historical data for
// the requested country.
var ErrCountryNotFound = errors.New("country not found or has no historical data")

// DiseaseShProvider implements the covid.DataSource interface for the
// disease.sh historical endpoint.
type DiseaseShProvider struct {
	name     string
	baseURL  string
	lastDays string
	client   *http.Client
}

// NewDiseaseShProvider creates a provider. lastDays is either "all" or a
// positive number of trailing days to request from the API.
func NewDiseaseShProvider(client *http.Client, baseURL, lastDays string) *DiseaseShProvider {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = "https://disease.sh"
	}
	if lastDays == "" {
		lastDays = "all"
	}

	return &DiseaseShProvider{
		name:     "disease.sh",
		baseURL:  baseURL,
		lastDays: lastDays,
		client:   client,
	}
}

func (p *DiseaseShProvider) Name() string {
	return p.name
}

// Fetch retrieves the historical timeline for a country and flattens it into
// raw records. The timeline maps date strings to cumulative totals; a date
// present under cases but absent under deaths counts as zero deaths. Record
// order follows map iteration and is therefore arbitrary.
func (p *DiseaseShProvider) Fetch(ctx context.Context, country string) ([]covid.RawRecord, error) {
	u := fmt.Sprintf("%s/v3/covid-19/historical/%s?lastdays=%s",
		p.baseURL, url.PathEscape(country), url.QueryEscape(p.lastDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, country)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("disease.sh returned status %d for %s", resp.StatusCode, country)
	}

	var payload struct {
		Country  string `json:"country"`
		Timeline struct {
			Cases  map[string]int64 `json:"cases"`
			Deaths map[string]int64 `json:"deaths"`
		} `json:"timeline"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding disease.sh response: %w", err)
	}

	records := make([]covid.RawRecord, 0, len(payload.Timeline.Cases))
	for date, cases := range payload.Timeline.Cases {
		records = append(records, covid.RawRecord{
			Date:             date,
			CumulativeCases:  cases,
			CumulativeDeaths: payload.Timeline.Deaths[date],
		})
	}

	log.Debug().Str("country", country).Int("records", len(records)).
		Msg("fetched disease.sh timeline")

	return records, nil
}
