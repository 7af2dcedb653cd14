package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

// hourlyTimeLayout is the timestamp format the archive uses for hourly slots.
const hourlyTimeLayout = "2006-01-02T15:04"

// Client fetches historical hourly observations from the Open-Meteo archive
// API. It implements weather.ArchiveClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	backoff    BackoffConfig
	circuit    *gobreaker.CircuitBreaker

	// now is swappable in tests; the date window is computed from it.
	now func() time.Time
}

// NewClient creates a Client for the given archive endpoint. The http.Client
// carries the per-attempt timeout.
func NewClient(client *http.Client, baseURL string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "open-meteo-archive",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: cb,
		now:     time.Now,
	}
}

// FetchHourly fetches hourly temperature and humidity for the coordinate over
// a closed date range ending yesterday and spanning days calendar days. The
// archive only serves completed days, hence the one-day offset.
func (c *Client) FetchHourly(ctx context.Context, latitude, longitude float64, days int) (weather.HourlySeries, error) {
	if days < 1 {
		return weather.HourlySeries{}, fmt.Errorf("%w: days must be at least 1", weather.ErrFetch)
	}

	endDate := c.now().UTC().AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -(days - 1))

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", latitude))
		values.Set("longitude", fmt.Sprintf("%f", longitude))
		values.Set("hourly", "temperature_2m,relative_humidity_2m")
		values.Set("start_date", startDate.Format("2006-01-02"))
		values.Set("end_date", endDate.Format("2006-01-02"))
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := c.do(ctx, buildRequest)
	if err != nil {
		return weather.HourlySeries{}, fmt.Errorf("%w: %v", weather.ErrFetch, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly *struct {
			Time             []string   `json:"time"`
			Temperature2m    []*float64 `json:"temperature_2m"`
			RelativeHumidity []*float64 `json:"relative_humidity_2m"`
		} `json:"hourly"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.HourlySeries{}, fmt.Errorf("%w: %v", weather.ErrInvalidResponse, err)
	}

	if payload.Hourly == nil {
		return weather.HourlySeries{}, fmt.Errorf("%w: missing 'hourly' data", weather.ErrInvalidResponse)
	}
	if payload.Hourly.Time == nil {
		return weather.HourlySeries{}, fmt.Errorf("%w: missing 'time' in hourly data", weather.ErrInvalidResponse)
	}
	if payload.Hourly.Temperature2m == nil {
		return weather.HourlySeries{}, fmt.Errorf("%w: missing 'temperature_2m' in hourly data", weather.ErrInvalidResponse)
	}
	if payload.Hourly.RelativeHumidity == nil {
		return weather.HourlySeries{}, fmt.Errorf("%w: missing 'relative_humidity_2m' in hourly data", weather.ErrInvalidResponse)
	}

	n := len(payload.Hourly.Time)
	if len(payload.Hourly.Temperature2m) != n || len(payload.Hourly.RelativeHumidity) != n {
		return weather.HourlySeries{}, fmt.Errorf("%w: hourly arrays are not aligned", weather.ErrInvalidResponse)
	}

	series := weather.HourlySeries{
		Times:        make([]time.Time, 0, n),
		Temperatures: payload.Hourly.Temperature2m,
		Humidities:   payload.Hourly.RelativeHumidity,
	}
	for _, raw := range payload.Hourly.Time {
		ts, err := time.Parse(hourlyTimeLayout, raw)
		if err != nil {
			return weather.HourlySeries{}, fmt.Errorf("%w: bad hourly timestamp %q", weather.ErrInvalidResponse, raw)
		}
		series.Times = append(series.Times, ts)
	}

	return series, nil
}
