package httpapi

import (
	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type locationInfo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type dataRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type healthDatabase struct {
	Status       string `json:"status"`
	TotalRecords int64  `json:"total_records"`
}

type healthResponse struct {
	Status    string         `json:"status"`
	Service   string         `json:"service"`
	Timestamp string         `json:"timestamp"`
	Database  healthDatabase `json:"database"`
}

type healthErrorResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
}

type reportResponse struct {
	Status       string                  `json:"status"`
	Message      string                  `json:"message"`
	Location     locationInfo            `json:"location"`
	RecordsCount int                     `json:"records_count"`
	DataRange    dataRange               `json:"data_range"`
	SampleData   []weather.WeatherRecord `json:"sample_data"`
}

type dataResponse struct {
	Status         string                  `json:"status"`
	RecordsCount   int                     `json:"records_count"`
	HoursRequested int                     `json:"hours_requested"`
	LocationFilter *locationInfo           `json:"location_filter"`
	Data           []weather.WeatherRecord `json:"data"`
}
