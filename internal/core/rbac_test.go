package core

import (
	"errors"
	"testing"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleTreasurer, PermissionRead, true},
		{RoleTreasurer, PermissionWrite, true},
		{RoleViewer, PermissionRead, true},
		{RoleViewer, PermissionWrite, false},
		{Role("admin"), PermissionRead, false},
		{Role(""), PermissionWrite, false},
	}
	for _, tc := range cases {
		if got := HasPermission(tc.role, tc.perm); got != tc.want {
			t.Fatalf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestEnforcePermission(t *testing.T) {
	treasurer := Actor{ID: "u1", TenantID: "t1", Role: RoleTreasurer}
	viewer := Actor{ID: "u2", TenantID: "t1", Role: RoleViewer}

	if err := EnforcePermission(treasurer, PermissionWrite); err != nil {
		t.Fatalf("treasurer write: expected ok, got %v", err)
	}
	if err := EnforcePermission(treasurer, PermissionRead); err != nil {
		t.Fatalf("treasurer read: expected ok, got %v", err)
	}
	if err := EnforcePermission(viewer, PermissionRead); err != nil {
		t.Fatalf("viewer read: expected ok, got %v", err)
	}

	err := EnforcePermission(viewer, PermissionWrite)
	var authzErr *AuthorizationError
	if !errors.As(err, &authzErr) {
		t.Fatalf("viewer write: expected AuthorizationError, got %v", err)
	}
	if authzErr.Kind != AuthzForbidden {
		t.Fatalf("viewer write: expected forbidden, got %s", authzErr.Kind)
	}
	if authzErr.Required != PermissionWrite || authzErr.Role != RoleViewer {
		t.Fatalf("forbidden error should carry required permission and actual role, got %+v", authzErr)
	}
}

func TestEnforcePermissionUnknownRole(t *testing.T) {
	for _, role := range []Role{"admin", "", "Treasurer"} {
		err := EnforcePermission(Actor{ID: "u1", TenantID: "t1", Role: role}, PermissionRead)
		var authzErr *AuthorizationError
		if !errors.As(err, &authzErr) {
			t.Fatalf("role %q: expected AuthorizationError, got %v", role, err)
		}
		if authzErr.Kind != AuthzInvalidRole {
			t.Fatalf("role %q: expected invalid_role, got %s", role, authzErr.Kind)
		}
	}
}
