package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// settingsRepositoryImpl persists the two single-row settings tables. The
// id = 1 constraint keeps them single-row; saves are upserts against it.
type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

func (r *settingsRepositoryImpl) GetWorkPolicy(ctx context.Context) (settings.WorkPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT standard_work_minutes, late_threshold, half_day_below_minutes,
		       default_radius_meters, timezone, updated_at
		FROM work_policy
		WHERE id = 1
	`

	var wp settings.WorkPolicy
	err := q.QueryRow(ctx, query).Scan(
		&wp.StandardWorkMinutes,
		&wp.LateThreshold,
		&wp.HalfDayBelowMinutes,
		&wp.DefaultRadiusMeters,
		&wp.Timezone,
		&wp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.WorkPolicy{}, settings.ErrSettingsNotFound
		}
		return settings.WorkPolicy{}, fmt.Errorf("failed to get work policy: %w", err)
	}

	return wp, nil
}

func (r *settingsRepositoryImpl) SaveWorkPolicy(ctx context.Context, policy settings.WorkPolicy) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_policy (
			id, standard_work_minutes, late_threshold, half_day_below_minutes,
			default_radius_meters, timezone, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			standard_work_minutes  = EXCLUDED.standard_work_minutes,
			late_threshold         = EXCLUDED.late_threshold,
			half_day_below_minutes = EXCLUDED.half_day_below_minutes,
			default_radius_meters  = EXCLUDED.default_radius_meters,
			timezone               = EXCLUDED.timezone,
			updated_at             = NOW()
	`

	_, err := q.Exec(ctx, query,
		policy.StandardWorkMinutes,
		policy.LateThreshold,
		policy.HalfDayBelowMinutes,
		policy.DefaultRadiusMeters,
		policy.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to save work policy: %w", err)
	}
	return nil
}

func (r *settingsRepositoryImpl) GetEmailSettings(ctx context.Context) (settings.EmailSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT host, port, username, password, from_address, enabled, updated_at
		FROM email_settings
		WHERE id = 1
	`

	var es settings.EmailSettings
	err := q.QueryRow(ctx, query).Scan(
		&es.Host,
		&es.Port,
		&es.Username,
		&es.Password,
		&es.From,
		&es.Enabled,
		&es.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.EmailSettings{}, settings.ErrSettingsNotFound
		}
		return settings.EmailSettings{}, fmt.Errorf("failed to get email settings: %w", err)
	}

	return es, nil
}

func (r *settingsRepositoryImpl) SaveEmailSettings(ctx context.Context, email settings.EmailSettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_settings (id, host, port, username, password, from_address, enabled, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			host         = EXCLUDED.host,
			port         = EXCLUDED.port,
			username     = EXCLUDED.username,
			password     = EXCLUDED.password,
			from_address = EXCLUDED.from_address,
			enabled      = EXCLUDED.enabled,
			updated_at   = NOW()
	`

	_, err := q.Exec(ctx, query,
		email.Host,
		email.Port,
		email.Username,
		email.Password,
		email.From,
		email.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to save email settings: %w", err)
	}
	return nil
}
