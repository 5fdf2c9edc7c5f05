package handler

import (
	"encoding/json"
	"net/http"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"
)

type SubmissionHandler struct {
	submissionUsecase usecase.SubmissionUsecase
}

func NewSubmissionHandler(submissionUsecase usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUsecase: submissionUsecase,
	}
}

// SubmitForm stores a completed form. Answers are validated per question
// and errors are keyed by question id.
// @Summary Submit form
// @Tags Submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param request body dto.SubmitFormRequest true "Answers"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /forms/{id}/submissions [post]
func (h *SubmissionHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	formID, ok := pathUUID(w, r, "id", "form")
	if !ok {
		return
	}

	var req dto.SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	submission, err := h.submissionUsecase.SubmitForm(r.Context(), caller, formID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to submit form")
		return
	}

	response.Success(w, http.StatusCreated, "Form submitted successfully", submission)
}

// ListSubmissions
// @Summary List submissions of a form, newest first
// @Tags Submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Response
// @Router /forms/{id}/submissions [get]
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	formID, ok := pathUUID(w, r, "id", "form")
	if !ok {
		return
	}

	submissions, err := h.submissionUsecase.ListSubmissions(r.Context(), caller, formID)
	if err != nil {
		h.writeError(w, err, "Failed to get submissions")
		return
	}

	response.Success(w, http.StatusOK, "Submissions retrieved successfully", submissions)
}

// GetSubmission
// @Summary Get submission with answers
// @Tags Submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Response
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	submissionID, ok := pathUUID(w, r, "id", "submission")
	if !ok {
		return
	}

	submission, err := h.submissionUsecase.GetSubmission(r.Context(), caller, submissionID)
	if err != nil {
		h.writeError(w, err, "Failed to get submission")
		return
	}

	response.Success(w, http.StatusOK, "Submission retrieved successfully", submission)
}

// GetFormSummary
// @Summary Answer counts and numeric averages per question
// @Tags Submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Response
// @Router /forms/{id}/summary [get]
func (h *SubmissionHandler) GetFormSummary(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}
	formID, ok := pathUUID(w, r, "id", "form")
	if !ok {
		return
	}

	summary, err := h.submissionUsecase.GetFormSummary(r.Context(), caller, formID)
	if err != nil {
		h.writeError(w, err, "Failed to get form summary")
		return
	}

	response.Success(w, http.StatusOK, "Form summary retrieved successfully", summary)
}

func (h *SubmissionHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeCommonError(w, err) {
		return
	}
	if err == usecase.ErrSubmissionNotFound {
		response.NotFound(w, "Submission not found")
		return
	}
	writeFormError(w, err, fallback)
}
