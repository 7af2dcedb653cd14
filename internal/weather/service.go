package weather

import (
	"context"
	"log"
)

// Service orchestrates fetching from the archive and persisting records.
type Service struct {
	store   Store
	archive ArchiveClient
}

// NewService creates a new Service.
func NewService(store Store, archive ArchiveClient) *Service {
	return &Service{
		store:   store,
		archive: archive,
	}
}

// Ingest fetches the hourly series for the past days for the given coordinate
// and reconciles it into the store. It returns the records that were created
// or updated, in chronological order as supplied by the archive.
func (s *Service) Ingest(ctx context.Context, latitude, longitude float64, days int) ([]WeatherRecord, error) {
	series, err := s.archive.FetchHourly(ctx, latitude, longitude, days)
	if err != nil {
		log.Printf("archive fetch failed for (%.4f, %.4f): %v", latitude, longitude, err)
		return nil, err
	}

	records, err := s.store.Reconcile(ctx, series, latitude, longitude)
	if err != nil {
		log.Printf("reconcile failed for (%.4f, %.4f): %v", latitude, longitude, err)
		return nil, err
	}
	return records, nil
}

// Recent delegates to the underlying store.
func (s *Service) Recent(ctx context.Context, hoursBack int) ([]WeatherRecord, error) {
	return s.store.Recent(ctx, hoursBack)
}

// ByLocation delegates to the underlying store.
func (s *Service) ByLocation(ctx context.Context, latitude, longitude float64, hoursBack int) ([]WeatherRecord, error) {
	return s.store.ByLocation(ctx, latitude, longitude, hoursBack)
}

// CountRecords delegates to the underlying store.
func (s *Service) CountRecords(ctx context.Context) (int64, error) {
	return s.store.CountRecords(ctx)
}
