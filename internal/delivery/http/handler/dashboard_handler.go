package handler

import (
	"net/http"

	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetDashboard
// @Summary Facility counters
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), caller)
	if err != nil {
		if writeCommonError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// GetNavigation
// @Summary Navigation entries for the caller
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /navigation [get]
func (h *DashboardHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, "Navigation retrieved successfully", h.dashboardUsecase.GetNavigation(caller))
}
