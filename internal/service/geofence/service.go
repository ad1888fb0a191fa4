package geofence

import (
	"context"
	"fmt"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/geofence"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/google/uuid"
)

type GeofenceServiceImpl struct {
	fences      geofence.GeofenceRepository
	settingsSvc settings.SettingsService
}

func NewGeofenceService(fences geofence.GeofenceRepository, settingsSvc settings.SettingsService) geofence.GeofenceService {
	return &GeofenceServiceImpl{
		fences:      fences,
		settingsSvc: settingsSvc,
	}
}

// Create implements geofence.GeofenceService.
func (g *GeofenceServiceImpl) Create(ctx context.Context, req geofence.CreateGeofenceRequest) (geofence.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.GeofenceResponse{}, err
	}

	radius := 0
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	} else {
		policy, err := g.settingsSvc.GetWorkPolicy(ctx)
		if err != nil {
			return geofence.GeofenceResponse{}, fmt.Errorf("failed to load work policy: %w", err)
		}
		radius = policy.DefaultRadiusMeters
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := g.fences.Create(ctx, geofence.GeoFence{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: radius,
		Active:       active,
	})
	if err != nil {
		return geofence.GeofenceResponse{}, err
	}

	return toGeofenceResponse(created), nil
}

// Get implements geofence.GeofenceService.
func (g *GeofenceServiceImpl) Get(ctx context.Context, id string) (geofence.GeofenceResponse, error) {
	fence, err := g.fences.GetByID(ctx, id)
	if err != nil {
		return geofence.GeofenceResponse{}, err
	}
	return toGeofenceResponse(fence), nil
}

// List implements geofence.GeofenceService.
func (g *GeofenceServiceImpl) List(ctx context.Context) ([]geofence.GeofenceResponse, error) {
	fences, err := g.fences.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]geofence.GeofenceResponse, 0, len(fences))
	for _, fence := range fences {
		responses = append(responses, toGeofenceResponse(fence))
	}
	return responses, nil
}

// Update implements geofence.GeofenceService.
func (g *GeofenceServiceImpl) Update(ctx context.Context, req geofence.UpdateGeofenceRequest) (geofence.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.GeofenceResponse{}, err
	}

	if err := g.fences.Update(ctx, req); err != nil {
		return geofence.GeofenceResponse{}, err
	}

	return g.Get(ctx, req.ID)
}

// Delete implements geofence.GeofenceService.
func (g *GeofenceServiceImpl) Delete(ctx context.Context, id string) error {
	return g.fences.Delete(ctx, id)
}

// Preview implements geofence.GeofenceService. It runs the same admission
// check a real check-in would, without recording anything.
func (g *GeofenceServiceImpl) Preview(ctx context.Context, req geofence.PreviewRequest) (geofence.AdmissionResult, error) {
	if err := req.Validate(); err != nil {
		return geofence.AdmissionResult{}, err
	}

	fences, err := g.fences.ListActive(ctx)
	if err != nil {
		return geofence.AdmissionResult{}, fmt.Errorf("failed to list geofences: %w", err)
	}

	return Admit(req.Latitude, req.Longitude, fences), nil
}

func toGeofenceResponse(f geofence.GeoFence) geofence.GeofenceResponse {
	return geofence.GeofenceResponse{
		ID:           f.ID,
		Name:         f.Name,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		RadiusMeters: f.RadiusMeters,
		Active:       f.Active,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    f.UpdatedAt.Format(time.RFC3339),
	}
}
