package covid

import "context"

// DataSource abstracts where historical records come from (e.g. disease.sh).
// Implementations make no ordering guarantee; Normalize sorts.
type DataSource interface {
	Name() string
	Fetch(ctx context.Context, country string) ([]RawRecord, error)
}
