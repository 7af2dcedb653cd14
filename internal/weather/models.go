package weather

import (
	"time"
)

// WeatherRecord is a single persisted hourly observation for a coordinate.
// At most one record exists per (Timestamp, Latitude, Longitude); the store's
// Reconcile enforces this with a lookup before every write.
type WeatherRecord struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Timestamp          time.Time `gorm:"not null;index" json:"timestamp"`
	Latitude           float64   `gorm:"not null" json:"latitude"`
	Longitude          float64   `gorm:"not null" json:"longitude"`
	Temperature2m      float64   `gorm:"column:temperature_2m;not null" json:"temperature_2m"`
	RelativeHumidity2m float64   `gorm:"column:relative_humidity_2m;not null" json:"relative_humidity_2m"`
	CreatedAt          time.Time `json:"created_at"`
}

func (WeatherRecord) TableName() string {
	return "weather_data"
}

// HourlySeries holds the aligned hourly arrays returned by the archive API.
// Temperatures and Humidities are pointers so that null hours survive
// decoding; Reconcile silently drops those indexes.
type HourlySeries struct {
	Times        []time.Time
	Temperatures []*float64
	Humidities   []*float64
}

// Len returns the number of hourly slots in the series.
func (s HourlySeries) Len() int {
	return len(s.Times)
}
