package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Himani1Sharma/weather-backend/internal/export"
	"github.com/Himani1Sharma/weather-backend/internal/weather"
)

const (
	serviceName = "Weather Backend Service"

	hoursDefault = 48

	excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfMIME   = "application/pdf"
)

var validate = validator.New()

// Handlers holds the dependencies the HTTP handlers orchestrate.
type Handlers struct {
	service   *weather.Service
	fetchDays int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. fetchDays is the
// ingestion window used by /weather-report.
func RegisterRoutes(app *fiber.App, service *weather.Service, fetchDays int) {
	h := &Handlers{service: service, fetchDays: fetchDays}

	app.Get("/health", h.health)
	app.Get("/weather-report", h.weatherReport)
	app.Get("/weather-data", h.weatherData)
	app.Get("/export/excel", h.exportExcel)
	app.Get("/export/pdf", h.exportPDF)
}

func (h *Handlers) health(c *fiber.Ctx) error {
	count, err := h.service.CountRecords(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(healthErrorResponse{
			Status:    "unhealthy",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Error:     err.Error(),
		})
	}

	return c.JSON(healthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database: healthDatabase{
			Status:       "connected",
			TotalRecords: count,
		},
	})
}

func (h *Handlers) weatherReport(c *fiber.Ctx) error {
	var q reportQuery
	if resp := q.bind(c); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*resp)
	}

	records, err := h.service.Ingest(c.Context(), *q.Lat, *q.Lon, h.fetchDays)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrFetch), errors.Is(err, weather.ErrInvalidResponse):
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
				Error:   "API fetch failed",
				Message: err.Error(),
			})
		case errors.Is(err, weather.ErrStorage):
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
				Error:   "Database storage failed",
				Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
				Error:   "Internal server error",
				Message: err.Error(),
			})
		}
	}

	var rng dataRange
	if len(records) > 0 {
		start := records[0].Timestamp.Format(time.RFC3339)
		end := records[len(records)-1].Timestamp.Format(time.RFC3339)
		rng = dataRange{Start: &start, End: &end}
	}

	sample := records
	if len(sample) > 5 {
		sample = sample[:5]
	}

	return c.JSON(reportResponse{
		Status:       "success",
		Message:      fmt.Sprintf("Successfully fetched and stored %d weather records", len(records)),
		Location:     locationInfo{Latitude: *q.Lat, Longitude: *q.Lon},
		RecordsCount: len(records),
		DataRange:    rng,
		SampleData:   sample,
	})
}

func (h *Handlers) weatherData(c *fiber.Ctx) error {
	var q readQuery
	if resp := q.bind(c); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*resp)
	}

	records, err := h.fetchRecords(c, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}

	if records == nil {
		records = []weather.WeatherRecord{}
	}

	var filter *locationInfo
	if q.hasLocation() {
		filter = &locationInfo{Latitude: *q.Lat, Longitude: *q.Lon}
	}

	return c.JSON(dataResponse{
		Status:         "success",
		RecordsCount:   len(records),
		HoursRequested: q.Hours,
		LocationFilter: filter,
		Data:           records,
	})
}

func (h *Handlers) exportExcel(c *fiber.Ctx) error {
	var q readQuery
	if resp := q.bind(c); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*resp)
	}

	records, err := h.fetchRecords(c, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}
	if len(records) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{
			Error:   "No data found",
			Message: "No weather data available for the specified parameters",
		})
	}

	location := "All locations"
	if q.hasLocation() {
		location = fmt.Sprintf("Lat: %v, Lon: %v", *q.Lat, *q.Lon)
	}

	data, err := export.Excel(records, location, q.Hours, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "Excel export failed",
			Message: err.Error(),
		})
	}

	filename := fmt.Sprintf("weather_data_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, excelMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func (h *Handlers) exportPDF(c *fiber.Ctx) error {
	var q readQuery
	if resp := q.bind(c); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*resp)
	}

	records, err := h.fetchRecords(c, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}
	if len(records) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{
			Error:   "No data found",
			Message: "No weather data available for the specified parameters",
		})
	}

	location := "All locations"
	if q.hasLocation() {
		location = fmt.Sprintf("Latitude: %v, Longitude: %v", *q.Lat, *q.Lon)
	}

	data, err := export.PDF(records, location, q.Hours, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "PDF export failed",
			Message: err.Error(),
		})
	}

	filename := fmt.Sprintf("weather_report_%s.pdf", time.Now().UTC().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, pdfMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// fetchRecords runs the location-filtered query when both coordinates were
// supplied, the any-location recency query otherwise.
func (h *Handlers) fetchRecords(c *fiber.Ctx, q readQuery) ([]weather.WeatherRecord, error) {
	if q.hasLocation() {
		return h.service.ByLocation(c.Context(), *q.Lat, *q.Lon, q.Hours)
	}
	return h.service.Recent(c.Context(), q.Hours)
}

// reportQuery holds /weather-report parameters: both coordinates required.
type reportQuery struct {
	Lat *float64 `validate:"required,min=-90,max=90"`
	Lon *float64 `validate:"required,min=-180,max=180"`
}

func (q *reportQuery) bind(c *fiber.Ctx) *errorResponse {
	var resp *errorResponse
	if q.Lat, resp = queryFloat(c, "lat"); resp != nil {
		return resp
	}
	if q.Lon, resp = queryFloat(c, "lon"); resp != nil {
		return resp
	}
	if err := validate.Struct(q); err != nil {
		return mapValidationError(err)
	}
	return nil
}

// readQuery holds the parameters shared by /weather-data and the export
// endpoints: an optional coordinate pair plus the recency window.
type readQuery struct {
	Lat   *float64 `validate:"omitempty,min=-90,max=90"`
	Lon   *float64 `validate:"omitempty,min=-180,max=180"`
	Hours int      `validate:"min=1,max=168"`
}

func (q *readQuery) bind(c *fiber.Ctx) *errorResponse {
	var resp *errorResponse
	if q.Lat, resp = queryFloat(c, "lat"); resp != nil {
		return resp
	}
	if q.Lon, resp = queryFloat(c, "lon"); resp != nil {
		return resp
	}
	q.Hours = c.QueryInt("hours", hoursDefault)
	if err := validate.Struct(q); err != nil {
		return mapValidationError(err)
	}
	return nil
}

func (q readQuery) hasLocation() bool {
	return q.Lat != nil && q.Lon != nil
}

func queryFloat(c *fiber.Ctx, name string) (*float64, *errorResponse) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &errorResponse{
			Error:   fmt.Sprintf("Invalid %s parameter", name),
			Message: fmt.Sprintf("%s must be a number", name),
		}
	}
	return &v, nil
}

// mapValidationError translates the first validator failure into the API's
// error vocabulary.
func mapValidationError(err error) *errorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.StructField() {
		case "Lat":
			if fe.Tag() == "required" {
				return &errorResponse{
					Error:   "Missing required parameters",
					Message: "Both lat and lon parameters are required",
				}
			}
			return &errorResponse{
				Error:   "Invalid latitude",
				Message: "Latitude must be between -90 and 90",
			}
		case "Lon":
			if fe.Tag() == "required" {
				return &errorResponse{
					Error:   "Missing required parameters",
					Message: "Both lat and lon parameters are required",
				}
			}
			return &errorResponse{
				Error:   "Invalid longitude",
				Message: "Longitude must be between -180 and 180",
			}
		case "Hours":
			return &errorResponse{
				Error:   "Invalid hours parameter",
				Message: "Hours must be between 1 and 168 (1 week)",
			}
		}
	}
	return &errorResponse{Error: "Invalid parameters", Message: err.Error()}
}
