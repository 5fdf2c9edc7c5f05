package handler

import (
	"encoding/json"
	"net/http"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"
	"lenglogs/pkg/validator"
)

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
	validator       *validator.CustomValidator
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase, validator *validator.CustomValidator) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
		validator:       validator,
	}
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	facility, err := h.facilityUsecase.GetFacility(r.Context(), caller)
	if err != nil {
		h.writeError(w, err, "Failed to get facility")
		return
	}

	response.Success(w, http.StatusOK, "Facility retrieved successfully", facility)
}

func (h *FacilityHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	staff, err := h.facilityUsecase.ListStaff(r.Context(), caller)
	if err != nil {
		h.writeError(w, err, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

// AssignStaff attaches a signed-up staff account to the manager's facility
// @Summary Assign staff
// @Tags Facility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AssignStaffRequest true "Staff email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /facility/staff [post]
func (h *FacilityHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	var req dto.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.facilityUsecase.AssignStaff(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err, "Failed to assign staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff assigned successfully", profile)
}

func (h *FacilityHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeCommonError(w, err) {
		return
	}

	switch err {
	case usecase.ErrFacilityNotFound:
		response.NotFound(w, "Facility not found")
	case usecase.ErrStaffNotFound:
		response.NotFound(w, "No staff account found for this email")
	case usecase.ErrNotStaff:
		response.BadRequest(w, "Only staff accounts can be assigned")
	case usecase.ErrStaffAlreadyAssigned:
		response.Conflict(w, "Staff member already belongs to another facility")
	default:
		response.InternalServerError(w, fallback)
	}
}
