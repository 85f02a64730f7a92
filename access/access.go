package access

import (
	"net/http"
	"os"

	"arone/globals"
	"arone/models"

	"github.com/julienschmidt/httprouter"
)

// Role names carried in JWT claims and user documents.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAdminEmail is the single administrator identity. Overridable with
// ADMIN_EMAIL; the comparison is case-sensitive as configured.
const DefaultAdminEmail = "admin@arone.lk"

func AdminEmail() string {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		return v
	}
	return DefaultAdminEmail
}

// IsAdminUser reports whether email is the configured administrator.
func IsAdminUser(email string) bool {
	return email != "" && email == AdminEmail()
}

// IsCurrentUserAdmin is the nil-safe wrapper used by handlers that may not
// have an authenticated principal.
func IsCurrentUserAdmin(user *models.User) bool {
	if user == nil {
		return false
	}
	return IsAdminUser(user.Email)
}

// RolesFor derives the role claims attached to a principal at login time.
// Only one admin identity exists today; call sites depend on the role, not
// the email, so adding admins later only touches this function.
func RolesFor(email string) []string {
	if IsAdminUser(email) {
		return []string{RoleUser, RoleAdmin}
	}
	return []string{RoleUser}
}

// HasRole checks a claims role slice for the given role.
func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RequireAdmin gates a route on the admin role claim. It expects to run
// after middleware.Authenticate, which puts the roles in the context.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roles, ok := r.Context().Value(globals.RoleKey).([]string)
		if !ok || !HasRole(roles, RoleAdmin) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r, ps)
	}
}
