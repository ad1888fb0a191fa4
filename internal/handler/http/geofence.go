package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendease/attendease-backend-go/internal/domain/geofence"
	"github.com/attendease/attendease-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GeofenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	geofenceService geofence.GeofenceService
}

func NewGeofenceHandler(geofenceService geofence.GeofenceService) GeofenceHandler {
	return &geofenceHandlerImpl{
		geofenceService: geofenceService,
	}
}

// Create implements GeofenceHandler.
func (h *geofenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.CreateGeofenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Geofence create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.geofenceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Geofence created successfully", result)
}

// Get implements GeofenceHandler.
func (h *geofenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "geofenceID")

	result, err := h.geofenceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements GeofenceHandler.
func (h *geofenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.geofenceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements GeofenceHandler.
func (h *geofenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpdateGeofenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Geofence update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "geofenceID")

	result, err := h.geofenceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence updated successfully", result)
}

// Delete implements GeofenceHandler.
func (h *geofenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "geofenceID")

	if err := h.geofenceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence deleted successfully", nil)
}

// Preview implements GeofenceHandler. Unlike check-in it never records
// anything, so clients can poll it while the user walks.
func (h *geofenceHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req geofence.PreviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Geofence preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.geofenceService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
