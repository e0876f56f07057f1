package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"agua-gas/internal/model"
	"agua-gas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	settings      repository.SettingsRepository
	password      string
	defaultNumber string
	logger        zerolog.Logger
}

// NewAdminService creates a new admin service. password is the shared
// back-office secret; defaultNumber is the WhatsApp destination used until
// an administrator saves one.
func NewAdminService(
	settings repository.SettingsRepository,
	password string,
	defaultNumber string,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		settings:      settings,
		password:      password,
		defaultNumber: defaultNumber,
		logger:        logger.With().Str("service", "admin").Logger(),
	}
}

// Login checks the shared password and issues a session token on success.
// There is no expiry and no rate limiting; this gate is a placeholder, not a
// security boundary.
func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.logger.Warn().Msg("admin login rejected")
		return "", model.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.settings.AddAdminSession(ctx, token); err != nil {
		return "", fmt.Errorf("failed to persist admin session: %w", err)
	}

	s.logger.Info().Msg("admin logged in")
	return token, nil
}

// Logout revokes a session token.
func (s *adminService) Logout(ctx context.Context, token string) error {
	if err := s.settings.RemoveAdminSession(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke admin session: %w", err)
	}
	s.logger.Info().Msg("admin logged out")
	return nil
}

// SessionValid reports whether a session token is active.
func (s *adminService) SessionValid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.settings.AdminSessionValid(ctx, token)
}

// BusinessNumber returns the saved WhatsApp destination number, falling back
// to the configured default.
func (s *adminService) BusinessNumber(ctx context.Context) (string, error) {
	number, err := s.settings.BusinessNumber(ctx)
	if err != nil {
		return "", err
	}
	if number == "" {
		return s.defaultNumber, nil
	}
	return number, nil
}

// SetBusinessNumber saves the WhatsApp destination number.
func (s *adminService) SetBusinessNumber(ctx context.Context, number string) error {
	if number == "" {
		return model.NewDomainError(model.ErrCodeValidation, "WhatsApp number is required")
	}
	return s.settings.SetBusinessNumber(ctx, number)
}
