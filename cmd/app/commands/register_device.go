package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	deviceUseCase "github.com/allisson/airmon/internal/device/usecase"
)

// RunRegisterDevice registers a new sensor device.
// The plain API token is printed exactly once; only its hash is stored,
// so it cannot be recovered later.
//
// Requirements: Database must be migrated and accessible.
func RunRegisterDevice(
	ctx context.Context,
	useCase deviceUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	hardwareID string,
	room string,
	model string,
	universityID string,
	format string,
) error {
	logger.Info("registering new device",
		slog.String("hardware_id", hardwareID),
		slog.String("room", room),
	)

	output, err := useCase.RegisterDevice(ctx, deviceUseCase.RegisterDeviceInput{
		HardwareID:   hardwareID,
		Room:         room,
		Model:        model,
		UniversityID: universityID,
	})
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}

	if format == "json" {
		result := map[string]string{
			"id":            output.Device.ID.String(),
			"hardware_id":   output.Device.HardwareID,
			"room":          output.Device.Room,
			"university_id": output.Device.UniversityID.String(),
			"api_token":     output.APIToken,
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(writer, "Device registered successfully")
		_, _ = fmt.Fprintf(writer, "ID:            %s\n", output.Device.ID)
		_, _ = fmt.Fprintf(writer, "Hardware ID:   %s\n", output.Device.HardwareID)
		_, _ = fmt.Fprintf(writer, "Room:          %s\n", output.Device.Room)
		_, _ = fmt.Fprintf(writer, "University ID: %s\n", output.Device.UniversityID)
		_, _ = fmt.Fprintf(writer, "API Token:     %s\n", output.APIToken)
		_, _ = fmt.Fprintln(writer, "")
		_, _ = fmt.Fprintln(writer, "Store the API token now: it is shown only once and cannot be recovered.")
	}

	logger.Info("device registered successfully",
		slog.String("device_id", output.Device.ID.String()),
		slog.String("hardware_id", output.Device.HardwareID),
	)

	return nil
}
