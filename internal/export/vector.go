package export

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// vectorRenderer is the fallback PDF pipeline: the same report sections drawn
// directly onto the page, no HTML in between. A chart image that cannot be
// decoded is skipped; the rest of the document still completes.
type vectorRenderer struct{}

func (vectorRenderer) Name() string { return "fpdf" }

func (vectorRenderer) Render(rep reportData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	// Header.
	pdf.SetTextColor(0, 122, 204)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Weather Data Report", "", 1, "L", false, 0, "")
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s UTC", rep.GeneratedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Metadata box.
	boxTop := pdf.GetY()
	pdf.SetDrawColor(0, 122, 204)
	pdf.Rect(left, boxTop, contentWidth, 30, "D")
	pdf.SetXY(left+4, boxTop+3)
	pdf.SetFont("Helvetica", "", 11)
	metadata := []string{
		fmt.Sprintf("Location: %s", rep.Location),
		fmt.Sprintf("Time Range: %d hours", rep.Hours),
		fmt.Sprintf("Data Period: %s to %s", rep.Start.Format("2006-01-02 15:04"), rep.End.Format("2006-01-02 15:04")),
		fmt.Sprintf("Total Records: %d", len(rep.Records)),
	}
	for _, line := range metadata {
		pdf.SetX(left + 4)
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.SetY(boxTop + 34)

	// Chart image, only if the PNG actually decodes.
	if rep.ChartPNG != nil {
		if cfg, err := png.DecodeConfig(bytes.NewReader(rep.ChartPNG)); err == nil && cfg.Width > 0 {
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(rep.ChartPNG))
			imgHeight := contentWidth * float64(cfg.Height) / float64(cfg.Width)
			pdf.ImageOptions("chart", left, pdf.GetY(), contentWidth, imgHeight, false, opts, 0, "")
			pdf.SetY(pdf.GetY() + imgHeight + 6)
		}
	}

	// Statistical summary.
	pdf.SetTextColor(0, 122, 204)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Statistical Summary", "", 1, "L", false, 0, "")
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 11)
	st := rep.Stats
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Temperature (°C)  Min: %.1f   Max: %.1f   Avg: %.1f   Range: %.1f",
		st.TempMin, st.TempMax, st.TempAvg, st.TempMax-st.TempMin)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Relative Humidity (%%)  Min: %.1f   Max: %.1f   Avg: %.1f   Range: %.1f",
		st.HumMin, st.HumMax, st.HumAvg, st.HumMax-st.HumMin)), "", 1, "L", false, 0, "")

	// Footer.
	pdf.Ln(10)
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Data source: Open-Meteo Archive API", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "This report was generated automatically by the Weather Backend Service", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
