package export

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// htmlRenderer is the primary PDF pipeline: the report is built as HTML+CSS
// and handed to wkhtmltopdf. It fails when the wkhtmltopdf binary is not
// installed, which is what the vector fallback is for.
type htmlRenderer struct{}

func (htmlRenderer) Name() string { return "wkhtmltopdf" }

func (htmlRenderer) Render(rep reportData) ([]byte, error) {
	var body bytes.Buffer
	if err := reportTemplate.Execute(&body, newReportContext(rep)); err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, err
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(20)
	pdfg.MarginBottom.Set(20)
	pdfg.MarginLeft.Set(20)
	pdfg.MarginRight.Set(20)

	pdfg.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(body.String())))

	if err := pdfg.Create(); err != nil {
		return nil, err
	}
	return pdfg.Bytes(), nil
}

// reportContext is the template view of reportData.
type reportContext struct {
	GeneratedAt string
	Location    string
	Hours       int
	Start       string
	End         string
	Count       int
	Stats       Stats
	TempRange   float64
	HumRange    float64
	ChartBase64 string
}

func newReportContext(rep reportData) reportContext {
	ctx := reportContext{
		GeneratedAt: rep.GeneratedAt.Format("2006-01-02 15:04:05"),
		Location:    rep.Location,
		Hours:       rep.Hours,
		Start:       rep.Start.Format("2006-01-02 15:04"),
		End:         rep.End.Format("2006-01-02 15:04"),
		Count:       len(rep.Records),
		Stats:       rep.Stats,
		TempRange:   rep.Stats.TempMax - rep.Stats.TempMin,
		HumRange:    rep.Stats.HumMax - rep.Stats.HumMin,
	}
	if rep.ChartPNG != nil {
		ctx.ChartBase64 = base64.StdEncoding.EncodeToString(rep.ChartPNG)
	}
	return ctx
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Weather Report</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #007acc; padding-bottom: 20px; }
.title { font-size: 24px; font-weight: bold; color: #007acc; margin-bottom: 10px; }
.metadata { background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
.chart-container { text-align: center; margin: 30px 0; }
.chart-title { font-size: 18px; font-weight: bold; margin-bottom: 15px; color: #007acc; }
.summary { background-color: #e9f7ff; padding: 15px; border-radius: 5px; margin-top: 20px; }
.summary-title { font-size: 16px; font-weight: bold; margin-bottom: 10px; color: #007acc; }
.footer { margin-top: 30px; font-size: 12px; color: #666; text-align: center; }
</style>
</head>
<body>
<div class="header">
	<div class="title">Weather Data Report</div>
	<p>Generated on {{.GeneratedAt}} UTC</p>
</div>

<div class="metadata">
	<h3>Report Information</h3>
	<p><strong>Location:</strong> {{.Location}}</p>
	<p><strong>Time Range:</strong> {{.Hours}} hours</p>
	<p><strong>Data Period:</strong> {{.Start}} to {{.End}}</p>
	<p><strong>Total Records:</strong> {{.Count}}</p>
</div>

{{if .ChartBase64}}
<div class="chart-container">
	<div class="chart-title">Temperature and Humidity Trends</div>
	<img src="data:image/png;base64,{{.ChartBase64}}" style="max-width: 100%; height: auto;" />
</div>
{{end}}

<div class="summary">
	<div class="summary-title">Statistical Summary</div>
	<div style="display: flex; justify-content: space-between;">
		<div style="flex: 1; margin-right: 20px;">
			<h4>Temperature (&deg;C)</h4>
			<p><strong>Minimum:</strong> {{printf "%.1f" .Stats.TempMin}}&deg;C</p>
			<p><strong>Maximum:</strong> {{printf "%.1f" .Stats.TempMax}}&deg;C</p>
			<p><strong>Average:</strong> {{printf "%.1f" .Stats.TempAvg}}&deg;C</p>
			<p><strong>Range:</strong> {{printf "%.1f" .TempRange}}&deg;C</p>
		</div>
		<div style="flex: 1;">
			<h4>Relative Humidity (%)</h4>
			<p><strong>Minimum:</strong> {{printf "%.1f" .Stats.HumMin}}%</p>
			<p><strong>Maximum:</strong> {{printf "%.1f" .Stats.HumMax}}%</p>
			<p><strong>Average:</strong> {{printf "%.1f" .Stats.HumAvg}}%</p>
			<p><strong>Range:</strong> {{printf "%.1f" .HumRange}}%</p>
		</div>
	</div>
</div>

<div class="footer">
	<p>Data source: Open-Meteo Archive API</p>
	<p>This report was generated automatically by the Weather Backend Service</p>
</div>
</body>
</html>
`))
