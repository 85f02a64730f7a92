package access

import (
	"testing"

	"arone/models"
)

func TestIsAdminUser(t *testing.T) {
	if !IsAdminUser("admin@arone.lk") {
		t.Error("Expected admin email to be recognized")
	}
	if IsAdminUser("ADMIN@arone.lk") {
		t.Error("Admin check must be case-sensitive")
	}
	if IsAdminUser("user@arone.lk") {
		t.Error("Non-admin email must be rejected")
	}
	if IsAdminUser("") {
		t.Error("Empty email must be rejected")
	}
}

func TestIsCurrentUserAdmin(t *testing.T) {
	if IsCurrentUserAdmin(nil) {
		t.Error("Nil user must not be admin")
	}
	if !IsCurrentUserAdmin(&models.User{Email: "admin@arone.lk"}) {
		t.Error("Admin user must be recognized")
	}
	if IsCurrentUserAdmin(&models.User{Email: "someone@arone.lk"}) {
		t.Error("Regular user must not be admin")
	}
}

func TestRolesFor(t *testing.T) {
	roles := RolesFor("admin@arone.lk")
	if !HasRole(roles, RoleAdmin) || !HasRole(roles, RoleUser) {
		t.Errorf("Expected admin to carry both roles, got %v", roles)
	}

	roles = RolesFor("visitor@example.com")
	if HasRole(roles, RoleAdmin) {
		t.Errorf("Expected no admin role, got %v", roles)
	}
	if !HasRole(roles, RoleUser) {
		t.Errorf("Expected user role, got %v", roles)
	}
}
