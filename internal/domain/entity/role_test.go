package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLevel(t *testing.T) {
	assert.Equal(t, 1, RoleLevel(RoleIDPatient))
	assert.Equal(t, 2, RoleLevel(RoleIDDoctor))
	assert.Equal(t, 3, RoleLevel(RoleIDAdmin))
	assert.Equal(t, 4, RoleLevel(RoleIDSuperAdmin))

	// Anything outside the fixed set maps to level 0
	assert.Equal(t, 0, RoleLevel(0))
	assert.Equal(t, 0, RoleLevel(5))
	assert.Equal(t, 0, RoleLevel(-1))
	assert.Equal(t, 0, RoleLevel(99))
}

func TestIsKnownRole(t *testing.T) {
	for _, roleID := range []int{RoleIDPatient, RoleIDDoctor, RoleIDAdmin, RoleIDSuperAdmin} {
		assert.True(t, IsKnownRole(roleID), "role %d should be known", roleID)
	}
	assert.False(t, IsKnownRole(0))
	assert.False(t, IsKnownRole(5))
	assert.False(t, IsKnownRole(-3))
}

func TestCanManage(t *testing.T) {
	known := []int{RoleIDPatient, RoleIDDoctor, RoleIDAdmin, RoleIDSuperAdmin}

	// Strictly greater level manages, equal or lower never does
	for _, manager := range known {
		for _, target := range known {
			expected := manager > target
			assert.Equal(t, expected, CanManage(manager, target),
				"CanManage(%d, %d)", manager, target)
		}
	}

	// A role never manages itself
	for _, roleID := range known {
		assert.False(t, CanManage(roleID, roleID))
	}

	// Unknown roles fail closed on either side
	assert.False(t, CanManage(99, RoleIDPatient))
	assert.False(t, CanManage(RoleIDSuperAdmin, 99))
	assert.False(t, CanManage(0, 0))
	assert.False(t, CanManage(-1, RoleIDPatient))
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(RoleIDSuperAdmin, RoleIDAdmin))
	assert.True(t, CanCreate(RoleIDSuperAdmin, RoleIDDoctor))
	assert.True(t, CanCreate(RoleIDSuperAdmin, RoleIDPatient))
	assert.True(t, CanCreate(RoleIDAdmin, RoleIDDoctor))
	assert.True(t, CanCreate(RoleIDAdmin, RoleIDPatient))
	assert.True(t, CanCreate(RoleIDDoctor, RoleIDPatient))

	// No role creates its own level or above
	assert.False(t, CanCreate(RoleIDSuperAdmin, RoleIDSuperAdmin))
	assert.False(t, CanCreate(RoleIDAdmin, RoleIDAdmin))
	assert.False(t, CanCreate(RoleIDAdmin, RoleIDSuperAdmin))
	assert.False(t, CanCreate(RoleIDDoctor, RoleIDDoctor))
	assert.False(t, CanCreate(RoleIDPatient, RoleIDPatient))
	assert.False(t, CanCreate(RoleIDPatient, RoleIDDoctor))
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, RolePatient, RoleName(RoleIDPatient))
	assert.Equal(t, RoleDoctor, RoleName(RoleIDDoctor))
	assert.Equal(t, RoleAdmin, RoleName(RoleIDAdmin))
	assert.Equal(t, RoleSuperAdmin, RoleName(RoleIDSuperAdmin))
	assert.Equal(t, "", RoleName(42))
}
