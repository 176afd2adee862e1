package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	"github.com/allisson/airmon/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// RefreshSession records metrics for session refresh operations.
func (a *authUseCaseWithMetrics) RefreshSession(ctx context.Context, token string) (string, error) {
	start := time.Now()
	newToken, err := a.next.RefreshSession(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "refresh_session", status)
	a.metrics.RecordDuration(ctx, "auth", "refresh_session", time.Since(start), status)

	return newToken, err
}

// Verify records metrics for token verification operations.
func (a *authUseCaseWithMetrics) Verify(ctx context.Context, token string) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := a.next.Verify(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "verify", status)
	a.metrics.RecordDuration(ctx, "auth", "verify", time.Since(start), status)

	return principal, err
}

// deviceAuthUseCaseWithMetrics decorates DeviceAuthUseCase with metrics instrumentation.
type deviceAuthUseCaseWithMetrics struct {
	next    DeviceAuthUseCase
	metrics metrics.BusinessMetrics
}

// NewDeviceAuthUseCaseWithMetrics wraps a DeviceAuthUseCase with metrics recording.
func NewDeviceAuthUseCaseWithMetrics(useCase DeviceAuthUseCase, m metrics.BusinessMetrics) DeviceAuthUseCase {
	return &deviceAuthUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for device authentication operations.
func (d *deviceAuthUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	input DeviceLoginInput,
) (*DeviceLoginOutput, error) {
	start := time.Now()
	output, err := d.next.Authenticate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "auth", "device_authenticate", status)
	d.metrics.RecordDuration(ctx, "auth", "device_authenticate", time.Since(start), status)

	return output, err
}
