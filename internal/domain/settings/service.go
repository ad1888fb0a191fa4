package settings

import (
	"context"
)

// SettingsService serves and updates the runtime-tunable configuration.
// GetWorkPolicy is on the hot path of every summary recompute, so
// implementations are expected to cache.
type SettingsService interface {
	GetWorkPolicy(ctx context.Context) (WorkPolicy, error)
	UpdateWorkPolicy(ctx context.Context, req UpdateWorkPolicyRequest) (WorkPolicyResponse, error)
	GetEmailSettings(ctx context.Context) (EmailSettingsResponse, error)
	UpdateEmailSettings(ctx context.Context, req UpdateEmailSettingsRequest) (EmailSettingsResponse, error)
}
