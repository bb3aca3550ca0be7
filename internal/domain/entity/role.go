package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants. The ID doubles as the privilege level: a higher ID
// always means a higher privilege. This ordering is fixed and used for every
// hierarchy comparison.
const (
	RoleIDPatient    = 1
	RoleIDDoctor     = 2
	RoleIDAdmin      = 3
	RoleIDSuperAdmin = 4
)

// RoleNames constants
const (
	RolePatient    = "patient"
	RoleDoctor     = "doctor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

var roleNames = map[int]string{
	RoleIDPatient:    RolePatient,
	RoleIDDoctor:     RoleDoctor,
	RoleIDAdmin:      RoleAdmin,
	RoleIDSuperAdmin: RoleSuperAdmin,
}

// RoleLevel returns the privilege level for a role ID, or 0 for a role
// outside the known set so that every hierarchy comparison fails closed.
func RoleLevel(roleID int) int {
	switch roleID {
	case RoleIDPatient, RoleIDDoctor, RoleIDAdmin, RoleIDSuperAdmin:
		return roleID
	}
	return 0
}

// IsKnownRole reports whether the role ID belongs to the fixed role set.
func IsKnownRole(roleID int) bool {
	return RoleLevel(roleID) > 0
}

// CanManage reports whether the manager role strictly outranks the target
// role. A role never manages its own level or above, and unknown roles never
// manage anything.
func CanManage(managerRoleID, targetRoleID int) bool {
	managerLevel := RoleLevel(managerRoleID)
	targetLevel := RoleLevel(targetRoleID)
	return managerLevel > 0 && targetLevel > 0 && managerLevel > targetLevel
}

// CanCreate follows the same strict-greater-than rule as CanManage: a
// superadmin can create admins, doctors and patients, an admin can create
// doctors and patients, a doctor can create patients, a patient nobody.
func CanCreate(creatorRoleID, targetRoleID int) bool {
	return CanManage(creatorRoleID, targetRoleID)
}

// RoleName returns the role name for a role ID, or an empty string for an
// unknown role.
func RoleName(roleID int) string {
	return roleNames[roleID]
}
