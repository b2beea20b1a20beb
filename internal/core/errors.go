package core

import (
	"fmt"
	"strings"
)

// Identity error kinds.
const (
	IdentityMalformed IdentityKind = "malformed"
	IdentityNotFound  IdentityKind = "not_found"
	IdentityInvalid   IdentityKind = "invalid"
)

// Authorization error kinds.
const (
	AuthzInvalidRole AuthzKind = "invalid_role"
	AuthzForbidden   AuthzKind = "forbidden"
)

type (
	IdentityKind string
	AuthzKind    string

	// IdentityError means the actor identity was unusable or unresolvable.
	IdentityError struct {
		Kind   IdentityKind
		Reason string
	}

	// AuthorizationError means the actor's role is unknown or lacks the
	// permission the operation requires.
	AuthorizationError struct {
		Kind     AuthzKind
		Required Permission
		Role     Role
	}

	// TenantIsolationError means the actor attempted to touch data belonging
	// to a tenant other than its own.
	TenantIsolationError struct {
		ActorTenant     string
		RequestedTenant string
	}

	// FieldError is a single input-field violation.
	FieldError struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	}

	// ValidationError carries every failing field of an untrusted input.
	ValidationError struct {
		Fields []FieldError
	}

	// StorageError wraps a failure of the persistence collaborator.
	StorageError struct {
		Op  string
		Err error
	}
)

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity %s: %s", e.Kind, e.Reason)
}

func (e *AuthorizationError) Error() string {
	if e.Kind == AuthzInvalidRole {
		return fmt.Sprintf("invalid role %q", e.Role)
	}
	return fmt.Sprintf("role %q does not have %q permission", e.Role, e.Required)
}

func (e *TenantIsolationError) Error() string {
	return fmt.Sprintf("cross-tenant access forbidden: actor belongs to tenant %s, requested tenant %s",
		e.ActorTenant, e.RequestedTenant)
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		reasons[i] = f.Field + ": " + f.Reason
	}
	return "invalid input: " + strings.Join(reasons, "; ")
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
