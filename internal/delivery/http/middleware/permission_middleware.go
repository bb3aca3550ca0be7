package middleware

import (
	"net/http"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/pkg/response"
)

// Policy is the per-endpoint authorization declaration attached to a route at
// registration time. An empty field means that check is skipped. When both
// fields are set, the role set is checked first, then permissions with OR
// semantics across the declared list.
type Policy struct {
	AllowedRoles []int
	Permissions  []string
}

// PermissionMiddleware is the authorization gate. It holds an immutable copy
// of the role permission matrix, injected at construction.
type PermissionMiddleware struct {
	permissions map[int]map[string]bool
}

// NewPermissionMiddleware builds the gate from a role to permission-list
// mapping, normally entity.RolePermissionMatrix().
func NewPermissionMiddleware(matrix map[int][]string) *PermissionMiddleware {
	permissions := make(map[int]map[string]bool, len(matrix))
	for roleID, granted := range matrix {
		set := make(map[string]bool, len(granted))
		for _, permission := range granted {
			set[permission] = true
		}
		permissions[roleID] = set
	}
	return &PermissionMiddleware{permissions: permissions}
}

// Require accepts or rejects a request before it reaches the handler:
//
//  1. no role in context (AuthMiddleware did not run or claim is absent) -> 403
//  2. role outside the known set -> 403 (fail closed, never default-allow)
//  3. declared role set not containing the caller's role -> 403
//  4. none of the declared permissions held by the caller's role -> 403
//  5. otherwise the request proceeds
//
// Rejection is a normal outcome, not an error; the gate never reveals the
// permission matrix to the caller.
func (m *PermissionMiddleware) Require(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok || !entity.IsKnownRole(roleID) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			if len(policy.AllowedRoles) > 0 && !containsRole(policy.AllowedRoles, roleID) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			if len(policy.Permissions) > 0 && !m.hasAnyPermission(roleID, policy.Permissions) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *PermissionMiddleware) hasAnyPermission(roleID int, required []string) bool {
	granted := m.permissions[roleID]
	for _, permission := range required {
		if granted[permission] {
			return true
		}
	}
	return false
}

func containsRole(roles []int, roleID int) bool {
	for _, allowed := range roles {
		if allowed == roleID {
			return true
		}
	}
	return false
}
