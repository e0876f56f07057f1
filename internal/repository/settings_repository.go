package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"agua-gas/internal/store"

	"github.com/rs/zerolog"
)

// settingsRepository implements SettingsRepository over the KV store.
type settingsRepository struct {
	kv     store.KV
	logger zerolog.Logger
}

// NewSettingsRepository creates a KV-backed settings repository.
func NewSettingsRepository(kv store.KV, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

// BusinessNumber returns the configured WhatsApp destination number, or
// empty when none has been saved.
func (r *settingsRepository) BusinessNumber(ctx context.Context) (string, error) {
	data, found, err := r.kv.Read(ctx, store.KeyBusinessNumber)
	if err != nil {
		return "", fmt.Errorf("failed to read business number: %w", err)
	}
	if !found {
		return "", nil
	}

	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		r.logger.Warn().Err(err).Msg("malformed business number, falling back to default")
		return "", nil
	}
	return number, nil
}

// SetBusinessNumber saves the WhatsApp destination number.
func (r *settingsRepository) SetBusinessNumber(ctx context.Context, number string) error {
	data, err := json.Marshal(number)
	if err != nil {
		return fmt.Errorf("failed to encode business number: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyBusinessNumber, data); err != nil {
		return fmt.Errorf("failed to persist business number: %w", err)
	}
	return nil
}

// AdminSessionValid reports whether the given admin session token was issued
// and not revoked.
func (r *settingsRepository) AdminSessionValid(ctx context.Context, token string) (bool, error) {
	sessions, err := r.adminSessions(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range sessions {
		if s == token {
			return true, nil
		}
	}
	return false, nil
}

// AddAdminSession records a newly issued admin session token.
func (r *settingsRepository) AddAdminSession(ctx context.Context, token string) error {
	sessions, err := r.adminSessions(ctx)
	if err != nil {
		return err
	}
	sessions = append(sessions, token)
	return r.saveAdminSessions(ctx, sessions)
}

// RemoveAdminSession revokes an admin session token.
func (r *settingsRepository) RemoveAdminSession(ctx context.Context, token string) error {
	sessions, err := r.adminSessions(ctx)
	if err != nil {
		return err
	}

	kept := sessions[:0]
	for _, s := range sessions {
		if s != token {
			kept = append(kept, s)
		}
	}
	return r.saveAdminSessions(ctx, kept)
}

func (r *settingsRepository) adminSessions(ctx context.Context) ([]string, error) {
	data, found, err := r.kv.Read(ctx, store.KeyAdminSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin sessions: %w", err)
	}
	if !found {
		return []string{}, nil
	}

	var sessions []string
	if err := json.Unmarshal(data, &sessions); err != nil {
		r.logger.Warn().Err(err).Msg("malformed admin session list, falling back to empty")
		return []string{}, nil
	}
	return sessions, nil
}

func (r *settingsRepository) saveAdminSessions(ctx context.Context, sessions []string) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to encode admin sessions: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyAdminSessions, data); err != nil {
		return fmt.Errorf("failed to persist admin sessions: %w", err)
	}
	return nil
}
