package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"
	"lenglogs/pkg/validator"

	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// ListPatients returns the active patients of the caller's facility
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search by name, phone or medical conditions"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	patients, err := h.patientUsecase.ListPatients(r.Context(), caller, r.URL.Query().Get("q"))
	if err != nil {
		if writeCommonError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetPatient returns one patient of the caller's facility, active or not
// @Summary Get patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), caller, patientID)
	if err != nil {
		h.writeError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// CreatePatient
// @Summary Create patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PatientRequest true "Patient"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, usecase.SaveModeCreate, uuid.Nil)
}

// UpdatePatient
// @Summary Update patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.PatientRequest true "Patient"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}
	h.save(w, r, usecase.SaveModeEdit, patientID)
}

func (h *PatientHandler) save(w http.ResponseWriter, r *http.Request, mode usecase.SaveMode, patientID uuid.UUID) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.SavePatient(r.Context(), caller, mode, patientID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to save patient")
		return
	}

	if mode == usecase.SaveModeCreate {
		response.Success(w, http.StatusCreated, "Patient created successfully", patient)
		return
	}
	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// DeactivatePatient soft-deletes a patient
// @Summary Deactivate patient
// @Tags Patients
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeactivatePatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	if err := h.patientUsecase.DeactivatePatient(r.Context(), caller, patientID); err != nil {
		h.writeError(w, err, "Failed to deactivate patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient deactivated successfully", nil)
}

// ReactivatePatient
// @Summary Reactivate patient
// @Tags Patients
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/reactivate [post]
func (h *PatientHandler) ReactivatePatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	if err := h.patientUsecase.ReactivatePatient(r.Context(), caller, patientID); err != nil {
		h.writeError(w, err, "Failed to reactivate patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient reactivated successfully", nil)
}

// ExportPatients downloads the active roster as a spreadsheet
// @Summary Export patient roster
// @Tags Patients
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /patients/export [get]
func (h *PatientHandler) ExportPatients(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	data, err := h.patientUsecase.ExportPatients(r.Context(), caller)
	if err != nil {
		h.writeError(w, err, "Failed to export patients")
		return
	}

	filename := fmt.Sprintf("patients-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *PatientHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeCommonError(w, err) {
		return
	}

	switch err {
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrPatientAccessDenied:
		response.Forbidden(w, "Access denied: Patient not in your facility")
	case usecase.ErrInvalidDateFormat:
		response.ValidationError(w, map[string]string{"date_of_birth": "Date of birth must be a date in YYYY-MM-DD format"})
	case usecase.ErrInvalidSaveMode:
		response.BadRequest(w, "Invalid save mode")
	default:
		response.InternalServerError(w, fallback)
	}
}
