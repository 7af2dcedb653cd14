package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

// GormStore is the persistent weather.Store backed by GORM over SQLite.
type GormStore struct {
	db *gorm.DB

	// now is swappable in tests; recency cutoffs are computed from it.
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path, runs migrations and
// returns the store.
func Open(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&weather.WeatherRecord{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &GormStore{db: db, now: time.Now}, nil
}

// Reconcile merges the series into storage inside one transaction. Hours with
// a null temperature or humidity are dropped. Existing rows keyed by exact
// (timestamp, latitude, longitude) are updated in place without touching
// CreatedAt; everything else is created. Any failure rolls back the whole
// batch and surfaces as weather.ErrStorage.
func (s *GormStore) Reconcile(ctx context.Context, series weather.HourlySeries, latitude, longitude float64) ([]weather.WeatherRecord, error) {
	records := make([]weather.WeatherRecord, 0, series.Len())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 0; i < series.Len(); i++ {
			temp := series.Temperatures[i]
			hum := series.Humidities[i]
			if temp == nil || hum == nil {
				continue
			}
			ts := series.Times[i]

			var existing weather.WeatherRecord
			err := tx.Where("timestamp = ? AND latitude = ? AND longitude = ?", ts, latitude, longitude).
				First(&existing).Error
			switch {
			case err == nil:
				existing.Temperature2m = *temp
				existing.RelativeHumidity2m = *hum
				if err := tx.Model(&existing).
					Select("temperature_2m", "relative_humidity_2m").
					Updates(&existing).Error; err != nil {
					return err
				}
				records = append(records, existing)
			case errors.Is(err, gorm.ErrRecordNotFound):
				record := weather.WeatherRecord{
					Timestamp:          ts,
					Latitude:           latitude,
					Longitude:          longitude,
					Temperature2m:      *temp,
					RelativeHumidity2m: *hum,
				}
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
				records = append(records, record)
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrStorage, err)
	}

	return records, nil
}

// Recent returns all records within the recency window, any location, ordered
// by timestamp ascending.
func (s *GormStore) Recent(ctx context.Context, hoursBack int) ([]weather.WeatherRecord, error) {
	cutoff := s.now().UTC().Add(-time.Duration(hoursBack) * time.Hour)

	var records []weather.WeatherRecord
	err := s.db.WithContext(ctx).
		Where("timestamp >= ?", cutoff).
		Order("timestamp asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrStorage, err)
	}
	return records, nil
}

// ByLocation returns records within the recency window for the exact
// coordinate, ordered by timestamp ascending. Matching is exact float
// equality; callers must resupply the coordinates used at ingestion.
func (s *GormStore) ByLocation(ctx context.Context, latitude, longitude float64, hoursBack int) ([]weather.WeatherRecord, error) {
	cutoff := s.now().UTC().Add(-time.Duration(hoursBack) * time.Hour)

	var records []weather.WeatherRecord
	err := s.db.WithContext(ctx).
		Where("latitude = ? AND longitude = ? AND timestamp >= ?", latitude, longitude, cutoff).
		Order("timestamp asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrStorage, err)
	}
	return records, nil
}

// CountRecords returns the total number of stored records.
func (s *GormStore) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&weather.WeatherRecord{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", weather.ErrStorage, err)
	}
	return count, nil
}
