package export

import (
	"fmt"
	"log"
	"time"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

// reportData carries everything a PDF renderer needs. ChartPNG may be nil
// when chart rendering failed; renderers then omit the image region.
type reportData struct {
	Records     []weather.WeatherRecord
	Location    string
	Hours       int
	GeneratedAt time.Time
	Start       time.Time
	End         time.Time
	Stats       Stats
	ChartPNG    []byte
}

// Renderer is a single PDF rendering pipeline.
type Renderer interface {
	Name() string
	Render(rep reportData) ([]byte, error)
}

// PDF renders the record set as a PDF report. Renderers are tried in order:
// the HTML+CSS pipeline first, then the direct vector fallback; the first
// success wins and the last failure surfaces as weather.ErrRender. Returns
// weather.ErrNoData when the record set is empty.
func PDF(records []weather.WeatherRecord, location string, hours int, now time.Time) ([]byte, error) {
	return renderPDF(defaultRenderers(), records, location, hours, now)
}

func renderPDF(renderers []Renderer, records []weather.WeatherRecord, location string, hours int, now time.Time) ([]byte, error) {
	if len(records) == 0 {
		return nil, weather.ErrNoData
	}

	start, end := timeBounds(records)
	rep := reportData{
		Records:     records,
		Location:    location,
		Hours:       hours,
		GeneratedAt: now.UTC(),
		Start:       start,
		End:         end,
		Stats:       computeStats(records),
	}

	chartPNG, err := Chart(records)
	if err != nil {
		// The report still completes without the chart image.
		log.Printf("chart rendering failed, report will omit it: %v", err)
	} else {
		rep.ChartPNG = chartPNG
	}

	var lastErr error
	for _, r := range renderers {
		out, err := r.Render(rep)
		if err != nil {
			log.Printf("pdf renderer %s failed: %v", r.Name(), err)
			lastErr = err
			continue
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %v", weather.ErrRender, lastErr)
}

func defaultRenderers() []Renderer {
	return []Renderer{htmlRenderer{}, vectorRenderer{}}
}
