package handler

import (
	"encoding/json"
	"net/http"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"
	"lenglogs/pkg/validator"
)

type FormHandler struct {
	formUsecase usecase.FormUsecase
	validator   *validator.CustomValidator
}

func NewFormHandler(formUsecase usecase.FormUsecase, validator *validator.CustomValidator) *FormHandler {
	return &FormHandler{
		formUsecase: formUsecase,
		validator:   validator,
	}
}

// ListForms
// @Summary List active forms of the facility
// @Tags Forms
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /forms [get]
func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	forms, err := h.formUsecase.ListForms(r.Context(), caller)
	if err != nil {
		h.writeError(w, err, "Failed to get forms")
		return
	}

	response.Success(w, http.StatusOK, "Forms retrieved successfully", forms)
}

// GetForm returns the form with its questions in display order
// @Summary Get form
// @Tags Forms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	formID, ok := pathUUID(w, r, "id", "form")
	if !ok {
		return
	}

	form, err := h.formUsecase.GetForm(r.Context(), caller, formID)
	if err != nil {
		h.writeError(w, err, "Failed to get form")
		return
	}

	response.Success(w, http.StatusOK, "Form retrieved successfully", form)
}

// CreateForm
// @Summary Create form
// @Tags Forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FormRequest true "Form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /forms [post]
func (h *FormHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	var req dto.FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.formUsecase.CreateForm(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create form")
		return
	}

	response.Success(w, http.StatusCreated, "Form created successfully", form)
}

// UpdateForm replaces the form details and all of its questions
// @Summary Update form
// @Tags Forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param request body dto.FormRequest true "Form"
// @Success 200 {object} response.Response
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	formID, ok := pathUUID(w, r, "id", "form")
	if !ok {
		return
	}

	var req dto.FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.formUsecase.UpdateForm(r.Context(), caller, formID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update form")
		return
	}

	response.Success(w, http.StatusOK, "Form updated successfully", form)
}

// DeleteForm deactivates a form; its submissions are kept
// @Summary Delete form
// @Tags Forms
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 200 {object} response.Response
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	formID, ok := pathUUID(w, r, "id", "form")
	if !ok {
		return
	}

	if err := h.formUsecase.DeleteForm(r.Context(), caller, formID); err != nil {
		h.writeError(w, err, "Failed to delete form")
		return
	}

	response.Success(w, http.StatusOK, "Form deleted successfully", nil)
}

func (h *FormHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeCommonError(w, err) {
		return
	}
	writeFormError(w, err, fallback)
}

func writeFormError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrFormNotFound:
		response.NotFound(w, "Form not found")
	case usecase.ErrFormAccessDenied:
		response.Forbidden(w, "Access denied: Form not in your facility")
	default:
		response.InternalServerError(w, fallback)
	}
}
