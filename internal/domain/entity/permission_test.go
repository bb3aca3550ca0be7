package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsForRole(t *testing.T) {
	assert.ElementsMatch(t, []string{
		PermissionBookAppointments,
		PermissionManageOwnData,
	}, PermissionsForRole(RoleIDPatient))

	// The doctor list is curated, not inherited: assigned variants only,
	// never MANAGE_ALL_PATIENTS or VIEW_ALL_MEDICAL_RECORDS.
	assert.ElementsMatch(t, []string{
		PermissionCreatePatient,
		PermissionManageAssignedPatients,
		PermissionCreateMedicalRecords,
		PermissionViewAssignedMedicalRecords,
		PermissionManageAssignedAppointments,
		PermissionManageOwnData,
	}, PermissionsForRole(RoleIDDoctor))

	assert.ElementsMatch(t, []string{
		PermissionCreateDoctor,
		PermissionCreatePatient,
		PermissionManageAllPatients,
		PermissionManageAllAppointments,
		PermissionViewAllMedicalRecords,
		PermissionDeleteUsers,
		PermissionViewSystemLogs,
		PermissionManageOwnData,
	}, PermissionsForRole(RoleIDAdmin))

	assert.ElementsMatch(t, []string{
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
	}, PermissionsForRole(RoleIDSuperAdmin))

	assert.Empty(t, PermissionsForRole(99))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleIDPatient, PermissionBookAppointments))
	assert.True(t, HasPermission(RoleIDDoctor, PermissionManageAssignedPatients))
	assert.True(t, HasPermission(RoleIDSuperAdmin, PermissionManageSystemSettings))

	// Grants do not leak across roles or up the hierarchy
	assert.False(t, HasPermission(RoleIDDoctor, PermissionManageAllPatients))
	assert.False(t, HasPermission(RoleIDDoctor, PermissionViewAllMedicalRecords))
	assert.False(t, HasPermission(RoleIDAdmin, PermissionCreateAdmin))
	assert.False(t, HasPermission(RoleIDAdmin, PermissionManageSystemSettings))
	assert.False(t, HasPermission(RoleIDPatient, PermissionCreatePatient))
	assert.False(t, HasPermission(RoleIDSuperAdmin, PermissionManageAssignedPatients))

	// Unknown role or unknown permission name is simply false
	assert.False(t, HasPermission(99, PermissionManageOwnData))
	assert.False(t, HasPermission(RoleIDAdmin, "NOT_A_PERMISSION"))
}

func TestRolePermissionMatrix(t *testing.T) {
	matrix := RolePermissionMatrix()

	assert.Len(t, matrix, 4)
	for roleID, granted := range matrix {
		assert.ElementsMatch(t, PermissionsForRole(roleID), granted)
	}

	// The returned matrix is a copy; mutating it must not affect grants
	matrix[RoleIDPatient] = append(matrix[RoleIDPatient], PermissionDeleteUsers)
	assert.False(t, HasPermission(RoleIDPatient, PermissionDeleteUsers))
}
