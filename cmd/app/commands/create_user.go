package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/allisson/airmon/internal/user/usecase"
)

// RunCreateUser creates a new user account.
// Outputs the created user's ID in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	email string,
	password string,
	role string,
	universityID string,
	format string,
) error {
	logger.Info("creating new user",
		slog.String("email", email),
		slog.String("role", role),
	)

	user, err := useCase.RegisterUser(ctx, userUseCase.RegisterUserInput{
		Name:         name,
		Email:        email,
		Password:     password,
		Role:         role,
		UniversityID: universityID,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		result := map[string]string{
			"id":            user.ID.String(),
			"name":          user.Name,
			"email":         user.Email,
			"role":          string(user.Role),
			"university_id": user.UniversityID.String(),
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(writer, "User created successfully")
		_, _ = fmt.Fprintf(writer, "ID:            %s\n", user.ID)
		_, _ = fmt.Fprintf(writer, "Name:          %s\n", user.Name)
		_, _ = fmt.Fprintf(writer, "Email:         %s\n", user.Email)
		_, _ = fmt.Fprintf(writer, "Role:          %s\n", user.Role)
		_, _ = fmt.Fprintf(writer, "University ID: %s\n", user.UniversityID)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}
