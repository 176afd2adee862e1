// Package domain defines the air-quality alert domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus represents the delivery status of an alert
type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "pending"
	AlertStatusNotified AlertStatus = "notified"
	AlertStatusFailed   AlertStatus = "failed"
)

// Alert records a poor air-quality event detected at reading ingestion.
// The row is written in the same transaction as the reading, so an alert
// exists for every poor reading even if notification delivery lags.
type Alert struct {
	ID           uuid.UUID
	ReadingID    uuid.UUID
	DeviceID     uuid.UUID
	UniversityID uuid.UUID
	Room         string
	Message      string
	Status       AlertStatus
	Retries      int
	LastError    *string
	NotifiedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
