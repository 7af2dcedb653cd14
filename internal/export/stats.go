package export

import (
	"time"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

// Stats summarizes a record set for the PDF report and chart reference lines.
type Stats struct {
	TempMin float64
	TempMax float64
	TempAvg float64
	HumMin  float64
	HumMax  float64
	HumAvg  float64
}

// computeStats requires at least one record.
func computeStats(records []weather.WeatherRecord) Stats {
	st := Stats{
		TempMin: records[0].Temperature2m,
		TempMax: records[0].Temperature2m,
		HumMin:  records[0].RelativeHumidity2m,
		HumMax:  records[0].RelativeHumidity2m,
	}

	var tempSum, humSum float64
	for _, r := range records {
		tempSum += r.Temperature2m
		humSum += r.RelativeHumidity2m

		if r.Temperature2m < st.TempMin {
			st.TempMin = r.Temperature2m
		}
		if r.Temperature2m > st.TempMax {
			st.TempMax = r.Temperature2m
		}
		if r.RelativeHumidity2m < st.HumMin {
			st.HumMin = r.RelativeHumidity2m
		}
		if r.RelativeHumidity2m > st.HumMax {
			st.HumMax = r.RelativeHumidity2m
		}
	}

	n := float64(len(records))
	st.TempAvg = tempSum / n
	st.HumAvg = humSum / n
	return st
}

// timeBounds returns the earliest and latest timestamps in the record set.
func timeBounds(records []weather.WeatherRecord) (start, end time.Time) {
	start = records[0].Timestamp
	end = records[0].Timestamp
	for _, r := range records {
		if r.Timestamp.Before(start) {
			start = r.Timestamp
		}
		if r.Timestamp.After(end) {
			end = r.Timestamp
		}
	}
	return start, end
}
