package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

func sampleRecords(n int) []weather.WeatherRecord {
	base := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)
	records := make([]weather.WeatherRecord, n)
	for i := range records {
		records[i] = weather.WeatherRecord{
			ID:                 uint(i + 1),
			Timestamp:          base.Add(time.Duration(i) * time.Hour),
			Latitude:           47.37,
			Longitude:          8.55,
			Temperature2m:      12.0 + float64(i),
			RelativeHumidity2m: 80.0 - float64(i),
			CreatedAt:          base,
		}
	}
	return records
}

func TestExcelEmptyRecords(t *testing.T) {
	_, err := Excel(nil, "All locations", 48, time.Now())
	if !errors.Is(err, weather.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestExcelLayout(t *testing.T) {
	now := time.Date(2025, 8, 24, 10, 30, 0, 0, time.UTC)
	records := sampleRecords(3)

	data, err := Excel(records, "Lat: 47.37, Lon: 8.55", 48, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Weather Data", cell)
		if err != nil {
			t.Fatalf("failed to read cell %s: %v", cell, err)
		}
		return v
	}

	if got := get("A1"); got != "Weather Data Export" {
		t.Errorf("unexpected title: %q", got)
	}
	if got := get("A2"); got != "Location: Lat: 47.37, Lon: 8.55" {
		t.Errorf("unexpected location line: %q", got)
	}
	if got := get("A4"); got != "Export Date: 2025-08-24 10:30:00 UTC" {
		t.Errorf("unexpected export date line: %q", got)
	}
	if got := get("A5"); got != "Total Records: 3" {
		t.Errorf("unexpected record count line: %q", got)
	}

	// Header row.
	if get("A7") != "timestamp" || get("B7") != "temperature_2m" || get("C7") != "relative_humidity_2m" {
		t.Errorf("unexpected header row: %q %q %q", get("A7"), get("B7"), get("C7"))
	}

	// First data row with the fixed timestamp format.
	if got := get("A8"); got != "2025-08-22 00:00:00" {
		t.Errorf("unexpected timestamp cell: %q", got)
	}
	if got := get("B8"); got != "12" {
		t.Errorf("unexpected temperature cell: %q", got)
	}
	if got := get("C8"); got != "80" {
		t.Errorf("unexpected humidity cell: %q", got)
	}

	// One row per record, nothing after.
	if got := get("A11"); got != "" {
		t.Errorf("unexpected extra row: %q", got)
	}
}
