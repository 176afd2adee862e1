// Package usecase implements the alert business logic and orchestrates alert domain operations.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/alert/domain"
	"github.com/allisson/airmon/internal/database"
)

// Config holds alert dispatcher configuration
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// AlertRepository defines alert repository operations
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	GetPendingAlerts(ctx context.Context, limit int) ([]*domain.Alert, error)
	ListByUniversity(ctx context.Context, universityID uuid.UUID, offset, limit int) ([]*domain.Alert, error)
	Update(ctx context.Context, alert *domain.Alert) error
}

// AlertNotifier defines the interface for delivering alert notifications
type AlertNotifier interface {
	Notify(ctx context.Context, alert *domain.Alert) error
}

// UseCase defines the interface for alert use cases
type UseCase interface {
	Start(ctx context.Context) error
	DispatchAlerts(ctx context.Context) error
	ListAlerts(ctx context.Context, universityID uuid.UUID, offset, limit int) ([]*domain.Alert, error)
}

// AlertUseCase implements the pending-alert dispatch loop. Alerts are
// written by the reading ingestion path; this use case only delivers them.
type AlertUseCase struct {
	config    Config
	txManager database.TxManager
	alertRepo AlertRepository
	notifier  AlertNotifier
	logger    *slog.Logger
}

// NewAlertUseCase creates a new AlertUseCase
func NewAlertUseCase(
	config Config,
	txManager database.TxManager,
	alertRepo AlertRepository,
	notifier AlertNotifier,
	logger *slog.Logger,
) *AlertUseCase {
	return &AlertUseCase{
		config:    config,
		txManager: txManager,
		alertRepo: alertRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Start starts the alert dispatch loop
func (uc *AlertUseCase) Start(ctx context.Context) error {
	if uc.logger != nil {
		uc.logger.Info("starting alert dispatcher",
			slog.Duration("interval", uc.config.Interval),
			slog.Int("batch_size", uc.config.BatchSize),
		)
	}

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if uc.logger != nil {
				uc.logger.Info("stopping alert dispatcher")
			}
			return ctx.Err()
		case <-ticker.C:
			if err := uc.DispatchAlerts(ctx); err != nil {
				if uc.logger != nil {
					uc.logger.Error("failed to dispatch alerts", slog.Any("error", err))
				}
			}
		}
	}
}

// DispatchAlerts retrieves and delivers pending alerts in a transaction
func (uc *AlertUseCase) DispatchAlerts(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		alerts, err := uc.alertRepo.GetPendingAlerts(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}

		if len(alerts) == 0 {
			return nil
		}

		if uc.logger != nil {
			uc.logger.Info("dispatching alerts", slog.Int("count", len(alerts)))
		}

		for _, alert := range alerts {
			if err := uc.notifier.Notify(ctx, alert); err != nil {
				if uc.logger != nil {
					uc.logger.Error("failed to deliver alert",
						slog.String("alert_id", alert.ID.String()),
						slog.String("room", alert.Room),
						slog.Any("error", err),
					)
				}

				alert.Retries++
				errorMsg := err.Error()
				alert.LastError = &errorMsg

				if alert.Retries >= uc.config.MaxRetries {
					alert.Status = domain.AlertStatusFailed
				}

				if err := uc.alertRepo.Update(ctx, alert); err != nil {
					return err
				}
				continue
			}

			now := time.Now()
			alert.Status = domain.AlertStatusNotified
			alert.NotifiedAt = &now

			if err := uc.alertRepo.Update(ctx, alert); err != nil {
				return err
			}
		}

		return nil
	})
}

// ListAlerts retrieves alerts for a university
func (uc *AlertUseCase) ListAlerts(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.Alert, error) {
	return uc.alertRepo.ListByUniversity(ctx, universityID, offset, limit)
}

// LogNotifier is a notifier that records alert delivery in the application
// log. Stands in for an external channel (email, chat webhook) in
// deployments without one configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger,
	}
}

// Notify logs the alert
func (n *LogNotifier) Notify(_ context.Context, alert *domain.Alert) error {
	if n.logger != nil {
		n.logger.Warn("poor air quality alert",
			slog.String("alert_id", alert.ID.String()),
			slog.String("device_id", alert.DeviceID.String()),
			slog.String("room", alert.Room),
			slog.String("message", alert.Message),
		)
	}

	return nil
}
