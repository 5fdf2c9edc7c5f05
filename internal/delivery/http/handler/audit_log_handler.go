package handler

import (
	"net/http"
	"strconv"

	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListAuditLogs
// @Summary Audit trail of the facility, newest first
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Rows per page (default 20, max 100)"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	caller, ok := currentProfile(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = usecase.NormalizePage(page, limit)

	logs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), caller, page, limit)
	if err != nil {
		if writeCommonError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs.Logs, response.NewMeta(page, limit, logs.Total))
}
