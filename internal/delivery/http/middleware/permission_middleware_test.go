package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hospital-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func newGate() *PermissionMiddleware {
	return NewPermissionMiddleware(entity.RolePermissionMatrix())
}

// requestAs runs a request through the gate with the given role in context
// and reports the resulting status code plus whether the handler was reached.
func requestAs(t *testing.T, gate *PermissionMiddleware, policy Policy, roleID *int) (int, bool) {
	t.Helper()

	reached := false
	handler := gate.Require(policy)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if roleID != nil {
		req = req.WithContext(context.WithValue(req.Context(), RoleIDKey, *roleID))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code, reached
}

func intPtr(v int) *int { return &v }

func TestRequireNoRoleInContext(t *testing.T) {
	status, reached := requestAs(t, newGate(), Policy{}, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)
}

func TestRequireUnknownRole(t *testing.T) {
	gate := newGate()

	for _, roleID := range []int{0, 5, 99, -1} {
		status, reached := requestAs(t, gate, Policy{}, intPtr(roleID))
		assert.Equal(t, http.StatusForbidden, status, "role %d", roleID)
		assert.False(t, reached)
	}
}

func TestRequireRoleSet(t *testing.T) {
	gate := newGate()
	policy := Policy{AllowedRoles: []int{entity.RoleIDAdmin, entity.RoleIDSuperAdmin}}

	status, reached := requestAs(t, gate, policy, intPtr(entity.RoleIDAdmin))
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, reached)

	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDSuperAdmin))
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, reached)

	// A higher privilege level does not substitute for role set membership,
	// and neither does a lower one
	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDDoctor))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)

	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDPatient))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)
}

func TestRequirePermissionOrSemantics(t *testing.T) {
	gate := newGate()
	policy := Policy{Permissions: []string{
		entity.PermissionManageAllPatients,
		entity.PermissionManageAssignedPatients,
	}}

	// Admin holds the first permission, doctor only the second; either passes
	status, reached := requestAs(t, gate, policy, intPtr(entity.RoleIDAdmin))
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, reached)

	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDDoctor))
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, reached)

	// Patient holds neither
	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDPatient))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)
}

func TestRequireNoHierarchyFallback(t *testing.T) {
	gate := newGate()
	policy := Policy{Permissions: []string{entity.PermissionManageAssignedAppointments}}

	// Superadmin outranks doctor but does not hold the assigned-scope grant,
	// so the gate rejects; outranking is never a permission substitute
	status, reached := requestAs(t, gate, policy, intPtr(entity.RoleIDSuperAdmin))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)

	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDDoctor))
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, reached)
}

func TestRequireRoleSetCheckedBeforePermissions(t *testing.T) {
	gate := newGate()
	policy := Policy{
		AllowedRoles: []int{entity.RoleIDDoctor},
		Permissions:  []string{entity.PermissionViewAllMedicalRecords},
	}

	// Admin holds the permission but is outside the declared role set
	status, reached := requestAs(t, gate, policy, intPtr(entity.RoleIDAdmin))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)

	// Doctor is inside the role set but lacks the permission
	status, reached = requestAs(t, gate, policy, intPtr(entity.RoleIDDoctor))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, reached)
}

func TestRequireEmptyPolicy(t *testing.T) {
	gate := newGate()

	// An empty policy only requires an authenticated, known role
	for _, roleID := range []int{entity.RoleIDPatient, entity.RoleIDDoctor, entity.RoleIDAdmin, entity.RoleIDSuperAdmin} {
		status, reached := requestAs(t, gate, Policy{}, intPtr(roleID))
		assert.Equal(t, http.StatusOK, status, "role %d", roleID)
		assert.True(t, reached)
	}
}
