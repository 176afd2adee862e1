package app

import (
	"fmt"
	"sync"

	alertRepository "github.com/allisson/airmon/internal/alert/repository"
	alertUsecase "github.com/allisson/airmon/internal/alert/usecase"
)

// alertComponents holds the alert components and their init guards.
type alertComponents struct {
	repo    alertUsecase.AlertRepository
	useCase alertUsecase.UseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// AlertRepository returns the alert repository instance.
func (c *Container) AlertRepository() (alertUsecase.AlertRepository, error) {
	c.alertComponents.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["alertRepo"] = fmt.Errorf("failed to get database for alert repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.alertComponents.repo = alertRepository.NewMySQLAlertRepository(db)
		case "postgres":
			c.alertComponents.repo = alertRepository.NewPostgreSQLAlertRepository(db)
		default:
			c.initErrors["alertRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["alertRepo"]; exists {
		return nil, storedErr
	}
	return c.alertComponents.repo, nil
}

// AlertUseCase returns the alert use case with the dispatch loop configured.
func (c *Container) AlertUseCase() (alertUsecase.UseCase, error) {
	c.alertComponents.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["alertUseCase"] = fmt.Errorf("failed to get tx manager for alert use case: %w", err)
			return
		}

		alertRepo, err := c.AlertRepository()
		if err != nil {
			c.initErrors["alertUseCase"] = fmt.Errorf("failed to get alert repository for alert use case: %w", err)
			return
		}

		useCaseConfig := alertUsecase.Config{
			Interval:   c.config.AlertDispatchInterval,
			BatchSize:  c.config.AlertDispatchBatchSize,
			MaxRetries: c.config.AlertDispatchMaxRetries,
		}

		notifier := alertUsecase.NewLogNotifier(c.Logger())
		c.alertComponents.useCase = alertUsecase.NewAlertUseCase(
			useCaseConfig,
			txManager,
			alertRepo,
			notifier,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["alertUseCase"]; exists {
		return nil, storedErr
	}
	return c.alertComponents.useCase, nil
}
