package app

import (
	"context"
	"fmt"
	"sync"

	authService "github.com/allisson/airmon/internal/auth/service"
	authUsecase "github.com/allisson/airmon/internal/auth/usecase"
)

// authComponents holds the authentication components and their init guards.
type authComponents struct {
	signingKey        []byte
	passwordService   authService.PasswordService
	tokenService      authService.TokenService
	authUseCase       authUsecase.AuthUseCase
	deviceAuthUseCase authUsecase.DeviceAuthUseCase

	signingKeyInit        sync.Once
	passwordServiceInit   sync.Once
	tokenServiceInit      sync.Once
	authUseCaseInit       sync.Once
	deviceAuthUseCaseInit sync.Once
}

// SigningKey returns the token signing key material, unwrapping it through
// KMS when a key URI is configured.
func (c *Container) SigningKey() ([]byte, error) {
	c.authComponents.signingKeyInit.Do(func() {
		key, err := authService.LoadSigningKey(
			context.Background(),
			c.config.TokenSigningKey,
			c.config.KMSKeyURI,
		)
		if err != nil {
			c.initErrors["signingKey"] = fmt.Errorf("failed to load signing key: %w", err)
			return
		}
		c.authComponents.signingKey = key
	})
	if storedErr, exists := c.initErrors["signingKey"]; exists {
		return nil, storedErr
	}
	return c.authComponents.signingKey, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.authComponents.passwordServiceInit.Do(func() {
		c.authComponents.passwordService = authService.NewPasswordService()
	})
	return c.authComponents.passwordService
}

// TokenService returns the token issuing and validation service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.authComponents.tokenServiceInit.Do(func() {
		signingKey, err := c.SigningKey()
		if err != nil {
			c.initErrors["tokenService"] = err
			return
		}
		c.authComponents.tokenService = authService.NewTokenService(
			signingKey,
			c.config.TokenIssuer,
			c.config.UserTokenExpiration,
			c.config.DeviceTokenExpiration,
			authService.NewTokenCodec(),
		)
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.authComponents.tokenService, nil
}

// AuthUseCase returns the user session use case.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.authComponents.authUseCaseInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get user repository for auth use case: %w", err)
			return
		}

		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get token service for auth use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get business metrics for auth use case: %w", err)
			return
		}

		useCase := authUsecase.NewAuthUseCase(
			userRepo,
			c.PasswordService(),
			tokenService,
			c.config.UserTokenExpiration,
			c.Logger(),
		)
		c.authComponents.authUseCase = authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authComponents.authUseCase, nil
}

// DeviceAuthUseCase returns the device authentication use case.
func (c *Container) DeviceAuthUseCase() (authUsecase.DeviceAuthUseCase, error) {
	c.authComponents.deviceAuthUseCaseInit.Do(func() {
		deviceRepo, err := c.DeviceRepository()
		if err != nil {
			c.initErrors["deviceAuthUseCase"] = fmt.Errorf("failed to get device repository for device auth use case: %w", err)
			return
		}

		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["deviceAuthUseCase"] = fmt.Errorf("failed to get token service for device auth use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["deviceAuthUseCase"] = fmt.Errorf("failed to get business metrics for device auth use case: %w", err)
			return
		}

		useCase := authUsecase.NewDeviceAuthUseCase(
			deviceRepo,
			c.PasswordService(),
			tokenService,
			c.Logger(),
		)
		c.authComponents.deviceAuthUseCase = authUsecase.NewDeviceAuthUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["deviceAuthUseCase"]; exists {
		return nil, storedErr
	}
	return c.authComponents.deviceAuthUseCase, nil
}
