// Package dto provides data transfer objects for the alert HTTP layer.
package dto

import (
	"time"

	"github.com/allisson/airmon/internal/alert/domain"
)

// AlertResponse represents a poor-air-quality alert in API responses.
type AlertResponse struct {
	ID           string     `json:"id"`
	ReadingID    string     `json:"reading_id"`
	DeviceID     string     `json:"device_id"`
	UniversityID string     `json:"university_id"`
	Room         string     `json:"room"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	Retries      int        `json:"retries"`
	LastError    *string    `json:"last_error,omitempty"`
	NotifiedAt   *time.Time `json:"notified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MapAlertToResponse converts a domain alert to an API response.
func MapAlertToResponse(alert *domain.Alert) AlertResponse {
	return AlertResponse{
		ID:           alert.ID.String(),
		ReadingID:    alert.ReadingID.String(),
		DeviceID:     alert.DeviceID.String(),
		UniversityID: alert.UniversityID.String(),
		Room:         alert.Room,
		Message:      alert.Message,
		Status:       string(alert.Status),
		Retries:      alert.Retries,
		LastError:    alert.LastError,
		NotifiedAt:   alert.NotifiedAt,
		CreatedAt:    alert.CreatedAt,
	}
}

// ListAlertsResponse represents a paginated list of alerts in API responses.
type ListAlertsResponse struct {
	Data []AlertResponse `json:"data"`
}

// MapAlertsToListResponse converts a slice of domain alerts to a list response.
func MapAlertsToListResponse(alerts []*domain.Alert) ListAlertsResponse {
	data := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		data = append(data, MapAlertToResponse(alert))
	}

	return ListAlertsResponse{
		Data: data,
	}
}
