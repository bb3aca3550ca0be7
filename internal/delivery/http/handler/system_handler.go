package handler

import (
	"net/http"
	"strconv"

	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"

	"github.com/gorilla/mux"
)

// SystemHandler serves the permission matrix and audit trail read surfaces.
type SystemHandler struct {
	systemUsecase usecase.SystemUsecase
}

func NewSystemHandler(systemUsecase usecase.SystemUsecase) *SystemHandler {
	return &SystemHandler{systemUsecase: systemUsecase}
}

// GetPermissionMatrix handles listing the seeded role permission grants
// @Summary Get permission matrix
// @Tags System
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /permissions [get]
func (h *SystemHandler) GetPermissionMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.systemUsecase.GetPermissionMatrix(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get permission matrix")
		return
	}

	response.Success(w, http.StatusOK, "Permission matrix retrieved successfully", matrix)
}

// GetAuditLogs handles listing audit log entries
// @Summary List audit logs
// @Tags System
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *SystemHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.systemUsecase.GetAuditLogs(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", list.Logs, response.NewMeta(page, limit, list.Total))
}

// GetAuditLog handles fetching one audit log entry
// @Summary Get audit log
// @Tags System
// @Security BearerAuth
// @Produce json
// @Param id path int true "Audit Log ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /audit-logs/{id} [get]
func (h *SystemHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	log, err := h.systemUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAuditLogNotFound:
			response.NotFound(w, "Audit log not found")
		default:
			response.InternalServerError(w, "Failed to get audit log")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", log)
}

// Health reports process liveness
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "OK", map[string]string{"status": "up"})
}
