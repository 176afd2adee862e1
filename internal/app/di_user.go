package app

import (
	"fmt"
	"sync"

	userRepository "github.com/allisson/airmon/internal/user/repository"
	userUsecase "github.com/allisson/airmon/internal/user/usecase"
)

// userComponents holds the user components and their init guards.
type userComponents struct {
	repo    userUsecase.UserRepository
	useCase userUsecase.UseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userComponents.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.userComponents.repo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.userComponents.repo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userComponents.repo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userComponents.useCaseInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		useCase, err := userUsecase.NewUserUseCase(userRepo)
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to create user use case: %w", err)
			return
		}
		c.userComponents.useCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userComponents.useCase, nil
}
