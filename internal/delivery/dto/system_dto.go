package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

// RolePermissionsResponse mirrors the seeded permission grants for one role.
type RolePermissionsResponse struct {
	RoleID      int      `json:"role_id"`
	RoleName    string   `json:"role_name"`
	Permissions []string `json:"permissions"`
}

type PermissionMatrixResponse struct {
	Roles []RolePermissionsResponse `json:"roles"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	UserEmail string                 `json:"user_email,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}
