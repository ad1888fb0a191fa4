package geofence

import (
	"context"
)

// GeofenceService defines business logic for geofence administration and
// admission previews
type GeofenceService interface {
	Create(ctx context.Context, req CreateGeofenceRequest) (GeofenceResponse, error)
	Get(ctx context.Context, id string) (GeofenceResponse, error)
	List(ctx context.Context) ([]GeofenceResponse, error)
	Update(ctx context.Context, req UpdateGeofenceRequest) (GeofenceResponse, error)
	Delete(ctx context.Context, id string) error

	// Preview runs the admission check for a point without recording an event
	Preview(ctx context.Context, req PreviewRequest) (AdmissionResult, error)
}
