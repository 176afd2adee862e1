// Package dto provides data transfer objects for the assignment HTTP layer.
package dto

import (
	"time"

	"github.com/allisson/airmon/internal/assignment/domain"
)

// AssignmentResponse represents a cleaning assignment in API responses.
type AssignmentResponse struct {
	ID               string     `json:"id"`
	Room             string     `json:"room"`
	AssignedToUserID string     `json:"assigned_to_user_id"`
	ReadingID        *string    `json:"reading_id,omitempty"`
	UniversityID     string     `json:"university_id"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MapAssignmentToResponse converts a domain assignment to an API response.
func MapAssignmentToResponse(assignment *domain.CleaningAssignment) AssignmentResponse {
	var readingID *string
	if assignment.ReadingID != nil {
		s := assignment.ReadingID.String()
		readingID = &s
	}

	return AssignmentResponse{
		ID:               assignment.ID.String(),
		Room:             assignment.Room,
		AssignedToUserID: assignment.AssignedToUserID.String(),
		ReadingID:        readingID,
		UniversityID:     assignment.UniversityID.String(),
		Description:      assignment.Description,
		Status:           string(assignment.Status),
		CompletedAt:      assignment.CompletedAt,
		CreatedAt:        assignment.CreatedAt,
		UpdatedAt:        assignment.UpdatedAt,
	}
}

// ListAssignmentsResponse represents a paginated list of assignments in API responses.
type ListAssignmentsResponse struct {
	Data []AssignmentResponse `json:"data"`
}

// MapAssignmentsToListResponse converts a slice of domain assignments to a list response.
func MapAssignmentsToListResponse(assignments []*domain.CleaningAssignment) ListAssignmentsResponse {
	data := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		data = append(data, MapAssignmentToResponse(assignment))
	}

	return ListAssignmentsResponse{
		Data: data,
	}
}
