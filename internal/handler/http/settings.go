package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/attendease/attendease-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetWorkPolicy(w http.ResponseWriter, r *http.Request)
	UpdateWorkPolicy(w http.ResponseWriter, r *http.Request)
	GetEmailSettings(w http.ResponseWriter, r *http.Request)
	UpdateEmailSettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetWorkPolicy implements SettingsHandler.
func (h *settingsHandlerImpl) GetWorkPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.settingsService.GetWorkPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings.WorkPolicyResponse{
		StandardWorkMinutes: policy.StandardWorkMinutes,
		LateThreshold:       policy.LateThreshold,
		HalfDayBelowMinutes: policy.HalfDayBelowMinutes,
		DefaultRadiusMeters: policy.DefaultRadiusMeters,
		Timezone:            policy.Timezone,
	})
}

// UpdateWorkPolicy implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateWorkPolicy(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWorkPolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Work policy update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateWorkPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work policy updated", result)
}

// GetEmailSettings implements SettingsHandler.
func (h *settingsHandlerImpl) GetEmailSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetEmailSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateEmailSettings implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateEmailSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateEmailSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Email settings update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateEmailSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email settings updated", result)
}
