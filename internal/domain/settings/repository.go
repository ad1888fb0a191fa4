package settings

import (
	"context"
)

// SettingsRepository persists the single-row settings tables.
type SettingsRepository interface {
	GetWorkPolicy(ctx context.Context) (WorkPolicy, error)
	SaveWorkPolicy(ctx context.Context, policy WorkPolicy) error
	GetEmailSettings(ctx context.Context) (EmailSettings, error)
	SaveEmailSettings(ctx context.Context, email EmailSettings) error
}
