package ledger

import (
	"context"
	"log/slog"
	"strings"

	"tally/internal/core"
)

// IdentityResolver turns an opaque actor identifier into a fully-validated
// core.Actor by consulting the user store.
type IdentityResolver struct {
	users UserStore
}

func NewIdentityResolver(users UserStore) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve looks up rawID and returns the actor it identifies. Obviously bad
// input fails before the store is contacted; a record that comes back is
// never trusted blindly and fails resolution when its tenant or role is
// missing or unknown.
func (r *IdentityResolver) Resolve(ctx context.Context, rawID string) (core.Actor, error) {
	if strings.TrimSpace(rawID) == "" {
		return core.Actor{}, &core.IdentityError{
			Kind:   core.IdentityMalformed,
			Reason: "actor id is required",
		}
	}

	rec, err := r.users.FindUserByID(ctx, rawID)
	if err != nil {
		slog.DebugContext(ctx, "User lookup failed", "error", err)
		return core.Actor{}, &core.IdentityError{
			Kind:   core.IdentityNotFound,
			Reason: "user not found",
		}
	}

	if rec.TenantID == "" {
		return core.Actor{}, &core.IdentityError{
			Kind:   core.IdentityInvalid,
			Reason: "user has no tenant assigned",
		}
	}

	role := core.Role(rec.Role)
	if !role.Valid() {
		return core.Actor{}, &core.IdentityError{
			Kind:   core.IdentityInvalid,
			Reason: "user has invalid role",
		}
	}

	return core.Actor{
		ID:       rec.ID,
		Email:    rec.Email,
		TenantID: rec.TenantID,
		Role:     role,
	}, nil
}
