package geofence

import (
	"context"
)

type GeofenceRepository interface {
	Create(ctx context.Context, fence GeoFence) (GeoFence, error)
	GetByID(ctx context.Context, id string) (GeoFence, error)
	// ListActive returns only active fences; the admission check never
	// filters on its own
	ListActive(ctx context.Context) ([]GeoFence, error)
	List(ctx context.Context) ([]GeoFence, error)
	Update(ctx context.Context, req UpdateGeofenceRequest) error
	Delete(ctx context.Context, id string) error
}
