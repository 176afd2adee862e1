package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authService "github.com/allisson/airmon/internal/auth/service"
	userDomain "github.com/allisson/airmon/internal/user/domain"
	appValidation "github.com/allisson/airmon/internal/validation"
)

// authUseCase implements AuthUseCase for user sessions.
type authUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	sessionTTL      time.Duration
	logger          *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	sessionTTL time.Duration,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		sessionTTL:      sessionTTL,
		logger:          logger,
	}
}

// validateLoginInput validates the credentials using jellydator/validation
func (a *authUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login authenticates a user and issues a session token.
//
// Unknown emails and wrong passwords both return ErrCredentialInvalid so
// responses give no enumeration signal. The distinction is preserved in
// internal logs only.
func (a *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := a.validateLoginInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			if a.logger != nil {
				a.logger.Info("login rejected: unknown email", slog.String("email", email))
			}
			return nil, authDomain.ErrCredentialInvalid
		}
		return nil, err
	}

	if !a.passwordService.VerifyPassword(input.Password, user.Password) {
		if a.logger != nil {
			a.logger.Info("login rejected: wrong password", slog.String("user_id", user.ID.String()))
		}
		return nil, authDomain.ErrCredentialInvalid
	}

	claims := authDomain.NewUserClaims(user.ID, user.Email, user.Role, user.UniversityID)
	token, err := a.tokenService.Issue(claims, a.sessionTTL)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// RefreshSession validates a user token and issues a replacement.
func (a *authUseCase) RefreshSession(_ context.Context, token string) (string, error) {
	return a.tokenService.Refresh(token)
}

// Verify validates a user token and returns the principal it carries.
func (a *authUseCase) Verify(_ context.Context, token string) (*authDomain.Principal, error) {
	claims, err := a.tokenService.ValidateUserToken(token)
	if err != nil {
		return nil, err
	}

	principal, err := authDomain.NewPrincipalFromClaims(claims)
	if err != nil {
		return nil, err
	}

	return &principal, nil
}
