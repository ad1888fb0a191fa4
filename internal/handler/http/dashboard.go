package http

import (
	"net/http"

	"github.com/attendease/attendease-backend-go/internal/domain/dashboard"
	"github.com/attendease/attendease-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetTodayOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetTodayOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) GetTodayOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTodayOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
