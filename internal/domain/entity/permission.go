package entity

// Permission name constants. The set is fixed at compile time and not
// user-extensible at runtime.
const (
	PermissionCreateSuperAdmin = "CREATE_SUPER_ADMIN"
	PermissionCreateAdmin      = "CREATE_ADMIN"
	PermissionCreateDoctor     = "CREATE_DOCTOR"
	PermissionCreatePatient    = "CREATE_PATIENT"

	PermissionManageAllPatients      = "MANAGE_ALL_PATIENTS"
	PermissionManageAssignedPatients = "MANAGE_ASSIGNED_PATIENTS"
	PermissionManageOwnData          = "MANAGE_OWN_DATA"

	PermissionManageAllAppointments      = "MANAGE_ALL_APPOINTMENTS"
	PermissionManageAssignedAppointments = "MANAGE_ASSIGNED_APPOINTMENTS"
	PermissionBookAppointments           = "BOOK_APPOINTMENTS"

	PermissionCreateMedicalRecords       = "CREATE_MEDICAL_RECORDS"
	PermissionViewAllMedicalRecords      = "VIEW_ALL_MEDICAL_RECORDS"
	PermissionViewAssignedMedicalRecords = "VIEW_ASSIGNED_MEDICAL_RECORDS"

	PermissionDeleteUsers          = "DELETE_USERS"
	PermissionViewSystemLogs       = "VIEW_SYSTEM_LOGS"
	PermissionManageSystemSettings = "MANAGE_SYSTEM_SETTINGS"
)

// rolePermissions is the hand-curated grant list per role. It is intentionally
// NOT derived from the role hierarchy: a doctor manages assigned patients and
// appointments but never the "all" variants, even though the hierarchy alone
// might suggest broader inheritance.
var rolePermissions = map[int][]string{
	RoleIDPatient: {
		PermissionBookAppointments,
		PermissionManageOwnData,
	},
	RoleIDDoctor: {
		PermissionCreatePatient,
		PermissionManageAssignedPatients,
		PermissionCreateMedicalRecords,
		PermissionViewAssignedMedicalRecords,
		PermissionManageAssignedAppointments,
		PermissionManageOwnData,
	},
	RoleIDAdmin: {
		PermissionCreateDoctor,
		PermissionCreatePatient,
		PermissionManageAllPatients,
		PermissionManageAllAppointments,
		PermissionViewAllMedicalRecords,
		PermissionDeleteUsers,
		PermissionViewSystemLogs,
		PermissionManageOwnData,
	},
	RoleIDSuperAdmin: {
		PermissionCreateSuperAdmin,
		PermissionCreateAdmin,
		PermissionCreateDoctor,
		PermissionCreatePatient,
		PermissionManageAllPatients,
		PermissionManageAllAppointments,
		PermissionViewAllMedicalRecords,
		PermissionDeleteUsers,
		PermissionViewSystemLogs,
		PermissionManageSystemSettings,
		PermissionManageOwnData,
	},
}

// RolePermissionMatrix returns a copy of the full role to permission mapping.
// Callers own the copy; the underlying table is immutable after process start.
func RolePermissionMatrix() map[int][]string {
	matrix := make(map[int][]string, len(rolePermissions))
	for roleID, permissions := range rolePermissions {
		matrix[roleID] = append([]string(nil), permissions...)
	}
	return matrix
}

// PermissionsForRole returns the granted permissions for a role ID. Unknown
// roles get an empty list.
func PermissionsForRole(roleID int) []string {
	return append([]string(nil), rolePermissions[roleID]...)
}

// HasPermission reports whether a role holds a permission. False for unknown
// roles and unknown permission names, never an error.
func HasPermission(roleID int, permission string) bool {
	for _, granted := range rolePermissions[roleID] {
		if granted == permission {
			return true
		}
	}
	return false
}
