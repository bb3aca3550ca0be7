package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// PermissionGrantsToMatrixResponse groups seeded permission grants per role,
// ordered by ascending privilege level.
func PermissionGrantsToMatrixResponse(grants []entity.PermissionGrant) *dto.PermissionMatrixResponse {
	byRole := map[int][]string{}
	for _, grant := range grants {
		byRole[grant.RoleID] = append(byRole[grant.RoleID], grant.Permission)
	}

	resp := &dto.PermissionMatrixResponse{}
	for _, roleID := range []int{entity.RoleIDPatient, entity.RoleIDDoctor, entity.RoleIDAdmin, entity.RoleIDSuperAdmin} {
		if permissions, ok := byRole[roleID]; ok {
			resp.Roles = append(resp.Roles, dto.RolePermissionsResponse{
				RoleID:      roleID,
				RoleName:    entity.RoleName(roleID),
				Permissions: permissions,
			})
		}
	}
	return resp
}

// AuditLogToResponse converts an AuditLog entity to an AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	if log.User != nil {
		resp.UserEmail = log.User.Email
	}
	return resp
}

// AuditLogsToResponses converts a slice of AuditLog entities to DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
