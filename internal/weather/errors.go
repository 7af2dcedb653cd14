package weather

import "errors"

var (
	// ErrFetch is returned when the outbound archive request fails at the
	// transport or HTTP level.
	ErrFetch = errors.New("failed to fetch weather data")

	// ErrInvalidResponse is returned when the archive response is missing
	// expected hourly fields or the arrays are misaligned.
	ErrInvalidResponse = errors.New("invalid weather data received")

	// ErrStorage is returned when persisting a series fails; the whole
	// reconcile transaction is rolled back.
	ErrStorage = errors.New("failed to store weather data")

	// ErrNoData is returned by the exporters when there are no records to
	// render.
	ErrNoData = errors.New("no weather data available")

	// ErrRender is returned when every PDF rendering pipeline failed.
	ErrRender = errors.New("pdf rendering failed")
)
