package entity

import "time"

// PermissionGrant is a persisted (role, permission) pair seeded once at
// startup from the in-process matrix. Rows exist for audit and display only;
// the authorization gate never reads them.
type PermissionGrant struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID     int       `gorm:"not null;uniqueIndex:idx_role_permission" json:"role_id"`
	Permission string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_role_permission" json:"permission"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (PermissionGrant) TableName() string {
	return "permission_grants"
}
