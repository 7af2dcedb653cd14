package archive

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

const validPayload = `{
	"hourly": {
		"time": ["2025-08-22T00:00", "2025-08-22T01:00", "2025-08-22T02:00"],
		"temperature_2m": [12.5, null, 14.2],
		"relative_humidity_2m": [80, 78, null]
	}
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)
	// Keep retries out of the way so failure tests stay fast.
	c.backoff = BackoffConfig{MaxRetries: 0, InitialInterval: time.Millisecond}
	return c, srv
}

func TestFetchHourlyParsesSeries(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validPayload))
	}))
	c.now = func() time.Time { return time.Date(2025, 8, 24, 10, 0, 0, 0, time.UTC) }

	series, err := c.FetchHourly(context.Background(), 47.37, 8.55, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if series.Len() != 3 {
		t.Fatalf("expected 3 hourly slots, got %d", series.Len())
	}
	if len(series.Temperatures) != series.Len() || len(series.Humidities) != series.Len() {
		t.Fatalf("arrays not aligned: %d/%d/%d", series.Len(), len(series.Temperatures), len(series.Humidities))
	}
	if series.Temperatures[1] != nil {
		t.Errorf("null temperature should stay nil")
	}
	if series.Humidities[2] != nil {
		t.Errorf("null humidity should stay nil")
	}
	if *series.Temperatures[0] != 12.5 {
		t.Errorf("unexpected temperature: %v", *series.Temperatures[0])
	}
	want := time.Date(2025, 8, 22, 1, 0, 0, 0, time.UTC)
	if !series.Times[1].Equal(want) {
		t.Errorf("unexpected timestamp: %v", series.Times[1])
	}

	// Closed 2-day range ending yesterday.
	if got := gotQuery.Get("start_date"); got != "2025-08-22" {
		t.Errorf("unexpected start_date: %s", got)
	}
	if got := gotQuery.Get("end_date"); got != "2025-08-23" {
		t.Errorf("unexpected end_date: %s", got)
	}
	if got := gotQuery.Get("hourly"); got != "temperature_2m,relative_humidity_2m" {
		t.Errorf("unexpected hourly fields: %s", got)
	}
	if got := gotQuery.Get("timezone"); got != "auto" {
		t.Errorf("unexpected timezone: %s", got)
	}
}

func TestFetchHourlyInvalidResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing hourly", `{"latitude": 47.37}`},
		{"missing time", `{"hourly": {"temperature_2m": [1], "relative_humidity_2m": [2]}}`},
		{"missing temperature", `{"hourly": {"time": ["2025-08-22T00:00"], "relative_humidity_2m": [2]}}`},
		{"missing humidity", `{"hourly": {"time": ["2025-08-22T00:00"], "temperature_2m": [1]}}`},
		{"misaligned arrays", `{"hourly": {"time": ["2025-08-22T00:00"], "temperature_2m": [1, 2], "relative_humidity_2m": [3]}}`},
		{"bad timestamp", `{"hourly": {"time": ["not-a-time"], "temperature_2m": [1], "relative_humidity_2m": [2]}}`},
		{"not json", `<html></html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))

			_, err := c.FetchHourly(context.Background(), 47.37, 8.55, 1)
			if !errors.Is(err, weather.ErrInvalidResponse) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestFetchHourlyTransportFailure(t *testing.T) {
	c, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := c.FetchHourly(context.Background(), 47.37, 8.55, 1)
	if !errors.Is(err, weather.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestFetchHourlyHTTPErrorStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.FetchHourly(context.Background(), 47.37, 8.55, 1)
	if !errors.Is(err, weather.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestFetchHourlyRejectsBadDays(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for days < 1")
	}))

	_, err := c.FetchHourly(context.Background(), 47.37, 8.55, 0)
	if !errors.Is(err, weather.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}
