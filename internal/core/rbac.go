package core

// rolePermissions is the fixed role-to-permission table. It is built once and
// never mutated at runtime.
var rolePermissions = map[Role][]Permission{
	RoleTreasurer: {PermissionRead, PermissionWrite},
	RoleViewer:    {PermissionRead},
}

// HasPermission reports whether the role's permission set contains perm.
// Unknown roles hold nothing.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// EnforcePermission fails with an AuthorizationError when the actor's role is
// unknown or does not grant perm. It must run before any tenant or data
// access, so an unauthorized caller never learns whether the target exists.
func EnforcePermission(actor Actor, perm Permission) error {
	perms, ok := rolePermissions[actor.Role]
	if !ok {
		return &AuthorizationError{Kind: AuthzInvalidRole, Required: perm, Role: actor.Role}
	}
	for _, p := range perms {
		if p == perm {
			return nil
		}
	}
	return &AuthorizationError{Kind: AuthzForbidden, Required: perm, Role: actor.Role}
}
