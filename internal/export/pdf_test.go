package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"testing"
	"time"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

func TestChartProducesPNG(t *testing.T) {
	data, err := Chart(sampleRecords(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("chart output is not a PNG: %v", err)
	}
	if cfg.Width != chartWidth {
		t.Errorf("unexpected chart width: %d", cfg.Width)
	}
	// Two stacked panels.
	if cfg.Height != 2*chartPanelHeight {
		t.Errorf("unexpected chart height: %d", cfg.Height)
	}
}

func TestChartSingleRecord(t *testing.T) {
	if _, err := Chart(sampleRecords(1)); err != nil {
		t.Fatalf("single-record chart should render: %v", err)
	}
}

func TestChartEmptyRecords(t *testing.T) {
	if _, err := Chart(nil); !errors.Is(err, weather.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

type stubRenderer struct {
	name string
	out  []byte
	err  error
}

func (s stubRenderer) Name() string { return s.name }

func (s stubRenderer) Render(reportData) ([]byte, error) { return s.out, s.err }

func TestRenderPDFFirstSuccessWins(t *testing.T) {
	renderers := []Renderer{
		stubRenderer{name: "primary", out: []byte("primary-pdf")},
		stubRenderer{name: "fallback", out: []byte("fallback-pdf")},
	}

	out, err := renderPDF(renderers, sampleRecords(3), "All locations", 48, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "primary-pdf" {
		t.Fatalf("expected primary renderer output, got %q", out)
	}
}

func TestRenderPDFFallsBack(t *testing.T) {
	renderers := []Renderer{
		stubRenderer{name: "primary", err: fmt.Errorf("binary not found")},
		stubRenderer{name: "fallback", out: []byte("fallback-pdf")},
	}

	out, err := renderPDF(renderers, sampleRecords(3), "All locations", 48, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "fallback-pdf" {
		t.Fatalf("expected fallback renderer output, got %q", out)
	}
}

func TestRenderPDFAllFail(t *testing.T) {
	renderers := []Renderer{
		stubRenderer{name: "primary", err: fmt.Errorf("primary down")},
		stubRenderer{name: "fallback", err: fmt.Errorf("fallback down")},
	}

	_, err := renderPDF(renderers, sampleRecords(3), "All locations", 48, time.Now())
	if !errors.Is(err, weather.ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
}

func TestRenderPDFEmptyRecords(t *testing.T) {
	_, err := renderPDF(defaultRenderers(), nil, "All locations", 48, time.Now())
	if !errors.Is(err, weather.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestVectorRendererProducesPDF(t *testing.T) {
	records := sampleRecords(6)
	start, end := timeBounds(records)
	chartPNG, err := Chart(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rep := reportData{
		Records:     records,
		Location:    "Latitude: 47.37, Longitude: 8.55",
		Hours:       48,
		GeneratedAt: time.Now().UTC(),
		Start:       start,
		End:         end,
		Stats:       computeStats(records),
		ChartPNG:    chartPNG,
	}

	out, err := vectorRenderer{}.Render(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

// A chart image that cannot be decoded must not sink the document; only the
// image region is omitted.
func TestVectorRendererBadChart(t *testing.T) {
	records := sampleRecords(3)
	start, end := timeBounds(records)
	rep := reportData{
		Records:     records,
		Location:    "All locations",
		Hours:       48,
		GeneratedAt: time.Now().UTC(),
		Start:       start,
		End:         end,
		Stats:       computeStats(records),
		ChartPNG:    []byte("not a png"),
	}

	out, err := vectorRenderer{}.Render(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

// The full chain must produce a PDF whether or not wkhtmltopdf is installed;
// the fpdf fallback covers the latter.
func TestPDFChain(t *testing.T) {
	out, err := PDF(sampleRecords(6), "All locations", 48, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestComputeStats(t *testing.T) {
	records := sampleRecords(3) // temps 12,13,14; hums 80,79,78
	st := computeStats(records)

	if st.TempMin != 12 || st.TempMax != 14 || st.TempAvg != 13 {
		t.Errorf("unexpected temperature stats: %+v", st)
	}
	if st.HumMin != 78 || st.HumMax != 80 || st.HumAvg != 79 {
		t.Errorf("unexpected humidity stats: %+v", st)
	}
}
