package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

const (
	chartWidth       = 900
	chartPanelHeight = 320

	temperatureColor = "ff6b6b"
	humidityColor    = "4ecdc4"
)

// Chart renders the record set as a PNG with two stacked panels: temperature
// over time and relative humidity over time, each with a dashed average
// reference line. Returns weather.ErrNoData when the record set is empty.
func Chart(records []weather.WeatherRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, weather.ErrNoData
	}

	times := make([]time.Time, len(records))
	temps := make([]float64, len(records))
	hums := make([]float64, len(records))
	for i, r := range records {
		times[i] = r.Timestamp
		temps[i] = r.Temperature2m
		hums[i] = r.RelativeHumidity2m
	}
	st := computeStats(records)

	top, err := renderPanel("Temperature (°C)", times, temps, st.TempAvg, temperatureColor)
	if err != nil {
		return nil, err
	}
	bottom, err := renderPanel("Relative Humidity (%)", times, hums, st.HumAvg, humidityColor)
	if err != nil {
		return nil, err
	}

	return stackPNGs(top, bottom)
}

func renderPanel(title string, times []time.Time, values []float64, avg float64, hexColor string) ([]byte, error) {
	// go-chart cannot size an axis from a single point.
	if len(times) == 1 {
		times = append(times, times[0].Add(time.Hour))
		values = append(values, values[0])
	}

	color := drawing.ColorFromHex(hexColor)

	series := chart.TimeSeries{
		Name: title,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		},
		XValues: times,
		YValues: values,
	}
	avgLine := chart.TimeSeries{
		Name: fmt.Sprintf("Avg: %.1f", avg),
		Style: chart.Style{
			StrokeColor:     color,
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 5.0},
		},
		XValues: []time.Time{times[0], times[len(times)-1]},
		YValues: []float64{avg, avg},
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartPanelHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04"),
		},
		Series: []chart.Series{series, avgLine},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// stackPNGs composes the rendered panels vertically into one image.
func stackPNGs(panels ...[]byte) ([]byte, error) {
	images := make([]image.Image, 0, len(panels))
	width, height := 0, 0
	for _, p := range panels {
		img, err := png.Decode(bytes.NewReader(p))
		if err != nil {
			return nil, err
		}
		if img.Bounds().Dx() > width {
			width = img.Bounds().Dx()
		}
		height += img.Bounds().Dy()
		images = append(images, img)
	}

	combined := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(combined, combined.Bounds(), image.White, image.Point{}, draw.Src)

	y := 0
	for _, img := range images {
		b := img.Bounds()
		draw.Draw(combined, image.Rect(0, y, b.Dx(), y+b.Dy()), img, b.Min, draw.Src)
		y += b.Dy()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, combined); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
