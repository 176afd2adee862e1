package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/airmon/internal/assignment/domain"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/testutil"
)

func newTestAssignment(assignedToUserID, universityID uuid.UUID) *domain.CleaningAssignment {
	return &domain.CleaningAssignment{
		ID:               uuid.Must(uuid.NewV7()),
		Room:             "B-204",
		AssignedToUserID: assignedToUserID,
		UniversityID:     universityID,
		Description:      "ventilate and clean after poor air quality",
		Status:           domain.AssignmentStatusPending,
	}
}

func TestNewPostgreSQLAssignmentRepository(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestPostgreSQLAssignmentRepository_Create(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	ctx := context.Background()

	universityID := uuid.Must(uuid.NewV7())
	cleanerID := testutil.CreateTestUser(t, db, "postgres", "cleaner-create@campus.edu", universityID)

	assignment := newTestAssignment(cleanerID, universityID)

	err := repo.Create(ctx, assignment)
	assert.NoError(t, err)

	created, err := repo.GetByID(ctx, assignment.ID)
	assert.NoError(t, err)
	assert.Equal(t, assignment.ID, created.ID)
	assert.Equal(t, assignment.Room, created.Room)
	assert.Equal(t, cleanerID, created.AssignedToUserID)
	assert.Nil(t, created.ReadingID)
	assert.Equal(t, universityID, created.UniversityID)
	assert.Equal(t, assignment.Description, created.Description)
	assert.Equal(t, domain.AssignmentStatusPending, created.Status)
	assert.Nil(t, created.CompletedAt)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestPostgreSQLAssignmentRepository_Create_WithReading(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	ctx := context.Background()

	universityID := uuid.Must(uuid.NewV7())
	cleanerID := testutil.CreateTestUser(t, db, "postgres", "cleaner-reading@campus.edu", universityID)
	deviceID := testutil.CreateTestDevice(t, db, "postgres", "AA:BB:CC:DD:EE:30", universityID)
	readingID := testutil.CreateTestReading(t, db, "postgres", deviceID, universityID)

	assignment := newTestAssignment(cleanerID, universityID)
	assignment.ReadingID = &readingID

	require.NoError(t, repo.Create(ctx, assignment))

	created, err := repo.GetByID(ctx, assignment.ID)
	assert.NoError(t, err)
	require.NotNil(t, created.ReadingID)
	assert.Equal(t, readingID, *created.ReadingID)
}

func TestPostgreSQLAssignmentRepository_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	ctx := context.Background()

	assignment, err := repo.GetByID(ctx, uuid.Must(uuid.NewV7()))
	assert.Error(t, err)
	assert.Nil(t, assignment)
	assert.True(t, apperrors.Is(err, domain.ErrAssignmentNotFound))
}

func TestPostgreSQLAssignmentRepository_ListByUniversity(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	ctx := context.Background()

	universityID := uuid.Must(uuid.NewV7())
	otherUniversityID := uuid.Must(uuid.NewV7())
	cleanerID := testutil.CreateTestUser(t, db, "postgres", "cleaner-list@campus.edu", universityID)
	otherCleanerID := testutil.CreateTestUser(t, db, "postgres", "cleaner-other@campus.edu", otherUniversityID)

	mine := newTestAssignment(cleanerID, universityID)
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, newTestAssignment(otherCleanerID, otherUniversityID)))

	assignments, err := repo.ListByUniversity(ctx, universityID, 0, 50)
	assert.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, mine.ID, assignments[0].ID)
}

func TestPostgreSQLAssignmentRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	ctx := context.Background()

	universityID := uuid.Must(uuid.NewV7())
	cleanerID := testutil.CreateTestUser(t, db, "postgres", "cleaner-update@campus.edu", universityID)

	assignment := newTestAssignment(cleanerID, universityID)
	require.NoError(t, repo.Create(ctx, assignment))

	completedAt := time.Now().UTC()
	assignment.Status = domain.AssignmentStatusCompleted
	assignment.CompletedAt = &completedAt

	err := repo.Update(ctx, assignment)
	assert.NoError(t, err)

	updated, err := repo.GetByID(ctx, assignment.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.AssignmentStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.WithinDuration(t, completedAt, *updated.CompletedAt, time.Second)
}

func TestPostgreSQLAssignmentRepository_Update_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLAssignmentRepository(db)
	ctx := context.Background()

	universityID := uuid.Must(uuid.NewV7())
	cleanerID := testutil.CreateTestUser(t, db, "postgres", "cleaner-missing@campus.edu", universityID)

	assignment := newTestAssignment(cleanerID, universityID)

	err := repo.Update(ctx, assignment)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, domain.ErrAssignmentNotFound))
}
