package app

import (
	"fmt"
	"sync"

	assignmentRepository "github.com/allisson/airmon/internal/assignment/repository"
	assignmentUsecase "github.com/allisson/airmon/internal/assignment/usecase"
)

// assignmentComponents holds the assignment components and their init guards.
type assignmentComponents struct {
	repo    assignmentUsecase.AssignmentRepository
	useCase assignmentUsecase.UseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// AssignmentRepository returns the assignment repository instance.
func (c *Container) AssignmentRepository() (assignmentUsecase.AssignmentRepository, error) {
	c.assignmentComponents.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["assignmentRepo"] = fmt.Errorf("failed to get database for assignment repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.assignmentComponents.repo = assignmentRepository.NewMySQLAssignmentRepository(db)
		case "postgres":
			c.assignmentComponents.repo = assignmentRepository.NewPostgreSQLAssignmentRepository(db)
		default:
			c.initErrors["assignmentRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["assignmentRepo"]; exists {
		return nil, storedErr
	}
	return c.assignmentComponents.repo, nil
}

// AssignmentUseCase returns the assignment use case instance.
func (c *Container) AssignmentUseCase() (assignmentUsecase.UseCase, error) {
	c.assignmentComponents.useCaseInit.Do(func() {
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = fmt.Errorf("failed to get assignment repository for assignment use case: %w", err)
			return
		}

		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = fmt.Errorf("failed to get user repository for assignment use case: %w", err)
			return
		}

		c.assignmentComponents.useCase = assignmentUsecase.NewAssignmentUseCase(assignmentRepo, userRepo)
	})
	if storedErr, exists := c.initErrors["assignmentUseCase"]; exists {
		return nil, storedErr
	}
	return c.assignmentComponents.useCase, nil
}
