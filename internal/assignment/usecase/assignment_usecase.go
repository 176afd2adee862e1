// Package usecase implements the assignment business logic and orchestrates assignment domain operations.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/assignment/domain"
	authDomain "github.com/allisson/airmon/internal/auth/domain"
	userDomain "github.com/allisson/airmon/internal/user/domain"
	appValidation "github.com/allisson/airmon/internal/validation"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// CreateAssignmentInput contains the input data for assignment creation
type CreateAssignmentInput struct {
	Room             string `json:"room"`
	AssignedToUserID string `json:"assigned_to_user_id"`
	ReadingID        string `json:"reading_id"`
	Description      string `json:"description"`
}

// UseCase defines the interface for assignment business logic operations
type UseCase interface {
	CreateAssignment(ctx context.Context, actor *authDomain.Principal, input CreateAssignmentInput) (*domain.CleaningAssignment, error)
	ListAssignments(ctx context.Context, universityID uuid.UUID, offset, limit int) ([]*domain.CleaningAssignment, error)
	CompleteAssignment(ctx context.Context, actor *authDomain.Principal, id uuid.UUID) (*domain.CleaningAssignment, error)
}

// AssignmentRepository interface defines assignment repository operations
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.CleaningAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CleaningAssignment, error)
	ListByUniversity(ctx context.Context, universityID uuid.UUID, offset, limit int) ([]*domain.CleaningAssignment, error)
	Update(ctx context.Context, assignment *domain.CleaningAssignment) error
}

// UserRepository defines the user operations the assignment path needs
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}

// AssignmentUseCase handles assignment-related business logic
type AssignmentUseCase struct {
	assignmentRepo AssignmentRepository
	userRepo       UserRepository
	now            func() time.Time
}

// AssignmentUseCaseOption customizes an AssignmentUseCase
type AssignmentUseCaseOption func(*AssignmentUseCase)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) AssignmentUseCaseOption {
	return func(uc *AssignmentUseCase) {
		uc.now = now
	}
}

// NewAssignmentUseCase creates a new AssignmentUseCase
func NewAssignmentUseCase(
	assignmentRepo AssignmentRepository,
	userRepo UserRepository,
	opts ...AssignmentUseCaseOption,
) *AssignmentUseCase {
	uc := &AssignmentUseCase{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// validateCreateAssignmentInput validates the creation input using jellydator/validation
func (uc *AssignmentUseCase) validateCreateAssignmentInput(input CreateAssignmentInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Room,
			validation.Required.Error("room is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("room must be between 1 and 255 characters"),
		),
		validation.Field(&input.AssignedToUserID,
			validation.Required.Error("assigned_to_user_id is required"),
			validation.By(func(value interface{}) error {
				s, _ := value.(string)
				if _, err := uuid.Parse(s); err != nil {
					return validation.NewError("validation_uuid", "must be a valid UUID")
				}
				return nil
			}),
		),
		validation.Field(&input.ReadingID,
			validation.By(func(value interface{}) error {
				s, _ := value.(string)
				if s == "" {
					return nil
				}
				if _, err := uuid.Parse(s); err != nil {
					return validation.NewError("validation_uuid", "must be a valid UUID")
				}
				return nil
			}),
		),
		validation.Field(&input.Description,
			validation.Required.Error("description is required"),
			appValidation.NotBlank,
			validation.Length(1, 1000).Error("description must be between 1 and 1000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateAssignment creates a cleaning assignment in the actor's university.
// The target user must exist there and hold the cleaner role.
func (uc *AssignmentUseCase) CreateAssignment(
	ctx context.Context,
	actor *authDomain.Principal,
	input CreateAssignmentInput,
) (*domain.CleaningAssignment, error) {
	// Validate input
	if err := uc.validateCreateAssignmentInput(input); err != nil {
		return nil, err
	}

	assignedTo, err := uc.userRepo.GetByID(ctx, uuid.MustParse(input.AssignedToUserID))
	if err != nil {
		return nil, err
	}
	if assignedTo.UniversityID != actor.UniversityID {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "assigned user belongs to another university")
	}
	if assignedTo.Role != authDomain.RoleCleaner {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "assigned user must have the cleaner role")
	}

	assignment := &domain.CleaningAssignment{
		ID:               uuid.Must(uuid.NewV7()),
		Room:             strings.TrimSpace(input.Room),
		AssignedToUserID: assignedTo.ID,
		UniversityID:     actor.UniversityID,
		Description:      strings.TrimSpace(input.Description),
		Status:           domain.AssignmentStatusPending,
	}
	if input.ReadingID != "" {
		readingID := uuid.MustParse(input.ReadingID)
		assignment.ReadingID = &readingID
	}

	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// ListAssignments retrieves assignments for a university
func (uc *AssignmentUseCase) ListAssignments(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.CleaningAssignment, error) {
	return uc.assignmentRepo.ListByUniversity(ctx, universityID, offset, limit)
}

// CompleteAssignment marks an assignment as completed. Only the assigned
// cleaner or an admin may complete it, and never twice.
func (uc *AssignmentUseCase) CompleteAssignment(
	ctx context.Context,
	actor *authDomain.Principal,
	id uuid.UUID,
) (*domain.CleaningAssignment, error) {
	assignment, err := uc.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessUniversity(assignment.UniversityID) {
		return nil, authDomain.ErrUniversityAccessDenied
	}
	if actor.Role != authDomain.RoleAdmin && assignment.AssignedToUserID != actor.UserID {
		return nil, domain.ErrNotAssignmentOwner
	}
	if assignment.Status == domain.AssignmentStatusCompleted {
		return nil, domain.ErrAssignmentAlreadyCompleted
	}

	now := uc.now()
	assignment.Status = domain.AssignmentStatusCompleted
	assignment.CompletedAt = &now

	if err := uc.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}
