package app

import (
	"fmt"
	"sync"

	readingRepository "github.com/allisson/airmon/internal/reading/repository"
	readingUsecase "github.com/allisson/airmon/internal/reading/usecase"
)

// readingComponents holds the reading components and their init guards.
type readingComponents struct {
	repo    readingUsecase.ReadingRepository
	useCase readingUsecase.UseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// ReadingRepository returns the reading repository instance.
func (c *Container) ReadingRepository() (readingUsecase.ReadingRepository, error) {
	c.readingComponents.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["readingRepo"] = fmt.Errorf("failed to get database for reading repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.readingComponents.repo = readingRepository.NewMySQLReadingRepository(db)
		case "postgres":
			c.readingComponents.repo = readingRepository.NewPostgreSQLReadingRepository(db)
		default:
			c.initErrors["readingRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["readingRepo"]; exists {
		return nil, storedErr
	}
	return c.readingComponents.repo, nil
}

// ReadingUseCase returns the reading use case instance.
func (c *Container) ReadingUseCase() (readingUsecase.UseCase, error) {
	c.readingComponents.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["readingUseCase"] = fmt.Errorf("failed to get tx manager for reading use case: %w", err)
			return
		}

		readingRepo, err := c.ReadingRepository()
		if err != nil {
			c.initErrors["readingUseCase"] = fmt.Errorf("failed to get reading repository for reading use case: %w", err)
			return
		}

		deviceRepo, err := c.DeviceRepository()
		if err != nil {
			c.initErrors["readingUseCase"] = fmt.Errorf("failed to get device repository for reading use case: %w", err)
			return
		}

		alertRepo, err := c.AlertRepository()
		if err != nil {
			c.initErrors["readingUseCase"] = fmt.Errorf("failed to get alert repository for reading use case: %w", err)
			return
		}

		thresholds := readingUsecase.Thresholds{
			CO2PoorPPM:   c.config.ReadingCO2PoorThreshold,
			PM25PoorUgM3: c.config.ReadingPM25PoorThreshold,
		}

		c.readingComponents.useCase = readingUsecase.NewReadingUseCase(
			txManager,
			readingRepo,
			deviceRepo,
			alertRepo,
			thresholds,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["readingUseCase"]; exists {
		return nil, storedErr
	}
	return c.readingComponents.useCase, nil
}
