package weather

import (
	"context"
)

// ArchiveClient abstracts the historical weather source (Open-Meteo archive).
type ArchiveClient interface {
	FetchHourly(ctx context.Context, latitude, longitude float64, days int) (HourlySeries, error)
}

// Store is the contract the persistent store must satisfy.
type Store interface {
	// Reconcile merges a fetched series into storage inside one transaction:
	// existing (timestamp, lat, lon) rows are updated in place, missing ones
	// are created. Returned records follow the series order.
	Reconcile(ctx context.Context, series HourlySeries, latitude, longitude float64) ([]WeatherRecord, error)

	// Recent returns all records with timestamp >= now-hoursBack, any
	// location, ordered by timestamp ascending.
	Recent(ctx context.Context, hoursBack int) ([]WeatherRecord, error)

	// ByLocation is Recent restricted to an exact coordinate match.
	ByLocation(ctx context.Context, latitude, longitude float64, hoursBack int) ([]WeatherRecord, error)

	// CountRecords returns the total number of stored records.
	CountRecords(ctx context.Context) (int64, error)
}
