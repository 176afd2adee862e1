// Package dto provides data transfer objects for the reading HTTP layer.
package dto

import (
	"time"

	"github.com/allisson/airmon/internal/reading/domain"
)

// ReadingResponse represents an air-quality reading in API responses.
type ReadingResponse struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	UniversityID string    `json:"university_id"`
	CO2PPM       float64   `json:"co2_ppm"`
	PM25         float64   `json:"pm25"`
	TemperatureC float64   `json:"temperature_c"`
	HumidityPct  float64   `json:"humidity_pct"`
	Level        string    `json:"level"`
	RecordedAt   time.Time `json:"recorded_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// MapReadingToResponse converts a domain reading to an API response.
func MapReadingToResponse(reading *domain.AirQualityReading) ReadingResponse {
	return ReadingResponse{
		ID:           reading.ID.String(),
		DeviceID:     reading.DeviceID.String(),
		UniversityID: reading.UniversityID.String(),
		CO2PPM:       reading.CO2PPM,
		PM25:         reading.PM25,
		TemperatureC: reading.TemperatureC,
		HumidityPct:  reading.HumidityPct,
		Level:        string(reading.Level),
		RecordedAt:   reading.RecordedAt,
		CreatedAt:    reading.CreatedAt,
	}
}

// ListReadingsResponse represents a paginated list of readings in API responses.
type ListReadingsResponse struct {
	Data []ReadingResponse `json:"data"`
}

// MapReadingsToListResponse converts a slice of domain readings to a list response.
func MapReadingsToListResponse(readings []*domain.AirQualityReading) ListReadingsResponse {
	data := make([]ReadingResponse, 0, len(readings))
	for _, reading := range readings {
		data = append(data, MapReadingToResponse(reading))
	}

	return ListReadingsResponse{
		Data: data,
	}
}
