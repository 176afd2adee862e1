package app

import (
	"fmt"
	"sync"

	deviceRepository "github.com/allisson/airmon/internal/device/repository"
	deviceUsecase "github.com/allisson/airmon/internal/device/usecase"
)

// deviceComponents holds the device components and their init guards.
type deviceComponents struct {
	repo    deviceUsecase.DeviceRepository
	useCase deviceUsecase.UseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// DeviceRepository returns the device repository instance.
func (c *Container) DeviceRepository() (deviceUsecase.DeviceRepository, error) {
	c.deviceComponents.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["deviceRepo"] = fmt.Errorf("failed to get database for device repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.deviceComponents.repo = deviceRepository.NewMySQLDeviceRepository(db)
		case "postgres":
			c.deviceComponents.repo = deviceRepository.NewPostgreSQLDeviceRepository(db)
		default:
			c.initErrors["deviceRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["deviceRepo"]; exists {
		return nil, storedErr
	}
	return c.deviceComponents.repo, nil
}

// DeviceUseCase returns the device use case instance.
func (c *Container) DeviceUseCase() (deviceUsecase.UseCase, error) {
	c.deviceComponents.useCaseInit.Do(func() {
		deviceRepo, err := c.DeviceRepository()
		if err != nil {
			c.initErrors["deviceUseCase"] = fmt.Errorf("failed to get device repository for device use case: %w", err)
			return
		}

		c.deviceComponents.useCase = deviceUsecase.NewDeviceUseCase(deviceRepo, c.PasswordService())
	})
	if storedErr, exists := c.initErrors["deviceUseCase"]; exists {
		return nil, storedErr
	}
	return c.deviceComponents.useCase, nil
}
