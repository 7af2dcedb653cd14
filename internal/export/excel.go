package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

const (
	excelSheet     = "Weather Data"
	excelHeaderRow = 7
	maxColumnWidth = 50
)

// Excel renders the record set into an .xlsx workbook: a title block, a
// header row and one data row per record. Returns weather.ErrNoData when the
// record set is empty.
func Excel(records []weather.WeatherRecord, location string, hours int, now time.Time) ([]byte, error) {
	if len(records) == 0 {
		return nil, weather.ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", excelSheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 16, Bold: true},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	titleLines := []string{
		"Weather Data Export",
		fmt.Sprintf("Location: %s", location),
		fmt.Sprintf("Time Range: %d hours", hours),
		fmt.Sprintf("Export Date: %s UTC", now.UTC().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Total Records: %d", len(records)),
	}
	for i, line := range titleLines {
		if err := f.SetCellValue(excelSheet, fmt.Sprintf("A%d", i+1), line); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(excelSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	headers := []string{"timestamp", "temperature_2m", "relative_humidity_2m"}
	widths := make([]int, len(headers))
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, excelHeaderRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(excelSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[col] = len(header)
	}

	// The title block lives in column A and counts toward its width.
	for _, line := range titleLines {
		if len(line) > widths[0] {
			widths[0] = len(line)
		}
	}

	for i, record := range records {
		row := excelHeaderRow + 1 + i
		values := []string{
			record.Timestamp.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(record.Temperature2m, 'g', -1, 64),
			strconv.FormatFloat(record.RelativeHumidity2m, 'g', -1, 64),
		}

		if err := f.SetCellValue(excelSheet, fmt.Sprintf("A%d", row), values[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheet, fmt.Sprintf("B%d", row), record.Temperature2m); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheet, fmt.Sprintf("C%d", row), record.RelativeHumidity2m); err != nil {
			return nil, err
		}

		for col, v := range values {
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		w := width + 2
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := f.SetColWidth(excelSheet, name, name, float64(w)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
