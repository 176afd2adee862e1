// Package domain defines the air-quality reading domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/errors"
)

// Level is the classified air-quality band of a reading.
type Level string

const (
	LevelGood     Level = "good"
	LevelModerate Level = "moderate"
	LevelPoor     Level = "poor"
)

// Moderate-band lower bounds. The poor bounds come from configuration so
// operators can tune when alerts fire; the moderate bounds follow common
// indoor air-quality guidance and are fixed.
const (
	CO2ModerateThresholdPPM   = 800.0
	PM25ModerateThresholdUgM3 = 12.0
)

// AirQualityReading is a single sensor measurement. UniversityID is
// denormalized from the reporting device so list queries stay
// tenant-scoped without a join.
type AirQualityReading struct {
	ID           uuid.UUID
	DeviceID     uuid.UUID
	UniversityID uuid.UUID
	CO2PPM       float64
	PM25         float64
	TemperatureC float64
	HumidityPct  float64
	Level        Level
	RecordedAt   time.Time
	CreatedAt    time.Time
}

// ErrReadingNotFound indicates the requested reading does not exist.
var ErrReadingNotFound = errors.Wrap(errors.ErrNotFound, "reading not found")

// ClassifyLevel bands a measurement by its CO2 and PM2.5 values. The worst
// band across both pollutants wins.
func ClassifyLevel(co2PPM, pm25, co2PoorThreshold, pm25PoorThreshold float64) Level {
	switch {
	case co2PPM >= co2PoorThreshold || pm25 >= pm25PoorThreshold:
		return LevelPoor
	case co2PPM >= CO2ModerateThresholdPPM || pm25 >= PM25ModerateThresholdUgM3:
		return LevelModerate
	default:
		return LevelGood
	}
}
