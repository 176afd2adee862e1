// Package dto provides data transfer objects for the reading HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"
)

// IngestReadingRequest represents a measurement submitted by a sensor device.
// RecordedAt is optional; when omitted the server timestamp is used.
type IngestReadingRequest struct {
	CO2PPM       float64    `json:"co2_ppm"`
	PM25         float64    `json:"pm25"`
	TemperatureC float64    `json:"temperature_c"`
	HumidityPct  float64    `json:"humidity_pct"`
	RecordedAt   *time.Time `json:"recorded_at"`
}

// Validate checks if the ingest request carries plausible sensor values.
// The use case re-validates with the same bounds; this keeps obviously
// broken payloads out of the business layer.
func (r *IngestReadingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CO2PPM,
			validation.Min(0.0).Error("co2_ppm must not be negative"),
			validation.Max(50000.0).Error("co2_ppm is out of sensor range"),
		),
		validation.Field(&r.PM25,
			validation.Min(0.0).Error("pm25 must not be negative"),
			validation.Max(1000.0).Error("pm25 is out of sensor range"),
		),
		validation.Field(&r.TemperatureC,
			validation.Min(-40.0).Error("temperature_c is out of sensor range"),
			validation.Max(85.0).Error("temperature_c is out of sensor range"),
		),
		validation.Field(&r.HumidityPct,
			validation.Min(0.0).Error("humidity_pct must be between 0 and 100"),
			validation.Max(100.0).Error("humidity_pct must be between 0 and 100"),
		),
	)
}
