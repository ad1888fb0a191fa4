package settings

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/attendease/attendease-backend-go/internal/pkg/email"
)

// SettingsServiceImpl serves the runtime-tunable configuration. The work
// policy is read on every summary recompute, so it is cached in memory and
// invalidated on update. Defaults from the environment seed the store when
// the tables are still empty.
type SettingsServiceImpl struct {
	repo         settings.SettingsRepository
	emailSvc     email.EmailService
	defaultWork  settings.WorkPolicy
	defaultEmail settings.EmailSettings

	mu     sync.RWMutex
	cached *settings.WorkPolicy
}

func NewSettingsService(
	repo settings.SettingsRepository,
	emailSvc email.EmailService,
	defaultWork settings.WorkPolicy,
	defaultEmail settings.EmailSettings,
) settings.SettingsService {
	return &SettingsServiceImpl{
		repo:         repo,
		emailSvc:     emailSvc,
		defaultWork:  defaultWork,
		defaultEmail: defaultEmail,
	}
}

// GetWorkPolicy implements settings.SettingsService.
func (s *SettingsServiceImpl) GetWorkPolicy(ctx context.Context) (settings.WorkPolicy, error) {
	s.mu.RLock()
	if s.cached != nil {
		policy := *s.cached
		s.mu.RUnlock()
		return policy, nil
	}
	s.mu.RUnlock()

	policy, err := s.repo.GetWorkPolicy(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			policy = s.defaultWork
		} else {
			return settings.WorkPolicy{}, err
		}
	}

	s.mu.Lock()
	s.cached = &policy
	s.mu.Unlock()

	return policy, nil
}

// UpdateWorkPolicy implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateWorkPolicy(ctx context.Context, req settings.UpdateWorkPolicyRequest) (settings.WorkPolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.WorkPolicyResponse{}, err
	}

	policy, err := s.GetWorkPolicy(ctx)
	if err != nil {
		return settings.WorkPolicyResponse{}, err
	}

	if req.StandardWorkMinutes != nil {
		policy.StandardWorkMinutes = *req.StandardWorkMinutes
	}
	if req.LateThreshold != nil {
		policy.LateThreshold = *req.LateThreshold
	}
	if req.HalfDayBelowMinutes != nil {
		policy.HalfDayBelowMinutes = *req.HalfDayBelowMinutes
	}
	if req.DefaultRadiusMeters != nil {
		policy.DefaultRadiusMeters = *req.DefaultRadiusMeters
	}
	policy.UpdatedAt = time.Now().UTC()

	if err := s.repo.SaveWorkPolicy(ctx, policy); err != nil {
		return settings.WorkPolicyResponse{}, err
	}

	s.mu.Lock()
	s.cached = &policy
	s.mu.Unlock()

	return toWorkPolicyResponse(policy), nil
}

// GetEmailSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetEmailSettings(ctx context.Context) (settings.EmailSettingsResponse, error) {
	es, err := s.repo.GetEmailSettings(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			es = s.defaultEmail
		} else {
			return settings.EmailSettingsResponse{}, err
		}
	}
	return toEmailSettingsResponse(es), nil
}

// UpdateEmailSettings implements settings.SettingsService. The live email
// service picks up the new settings immediately.
func (s *SettingsServiceImpl) UpdateEmailSettings(ctx context.Context, req settings.UpdateEmailSettingsRequest) (settings.EmailSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.EmailSettingsResponse{}, err
	}

	es, err := s.repo.GetEmailSettings(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			es = s.defaultEmail
		} else {
			return settings.EmailSettingsResponse{}, err
		}
	}

	if req.Host != nil {
		es.Host = *req.Host
	}
	if req.Port != nil {
		es.Port = *req.Port
	}
	if req.Username != nil {
		es.Username = *req.Username
	}
	if req.Password != nil {
		es.Password = *req.Password
	}
	if req.From != nil {
		es.From = *req.From
	}
	if req.Enabled != nil {
		es.Enabled = *req.Enabled
	}
	es.UpdatedAt = time.Now().UTC()

	if err := s.repo.SaveEmailSettings(ctx, es); err != nil {
		return settings.EmailSettingsResponse{}, err
	}

	if s.emailSvc != nil {
		s.emailSvc.UpdateSettings(es)
	}

	return toEmailSettingsResponse(es), nil
}

func toWorkPolicyResponse(p settings.WorkPolicy) settings.WorkPolicyResponse {
	return settings.WorkPolicyResponse{
		StandardWorkMinutes: p.StandardWorkMinutes,
		LateThreshold:       p.LateThreshold,
		HalfDayBelowMinutes: p.HalfDayBelowMinutes,
		DefaultRadiusMeters: p.DefaultRadiusMeters,
		Timezone:            p.Timezone,
	}
}

func toEmailSettingsResponse(e settings.EmailSettings) settings.EmailSettingsResponse {
	return settings.EmailSettingsResponse{
		Host:     e.Host,
		Port:     e.Port,
		Username: e.Username,
		From:     e.From,
		Enabled:  e.Enabled,
	}
}
