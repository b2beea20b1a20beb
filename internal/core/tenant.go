package core

// VerifyTenantOwnership is the single isolation boundary: it fails with a
// TenantIsolationError whenever the actor's home tenant differs from the
// tenant the caller claims to target. It runs after permission enforcement
// and before any tenant-scoped store access, so a cross-tenant attempt never
// triggers a tenant-scoped query.
func VerifyTenantOwnership(actor Actor, tenantID string) error {
	if actor.TenantID != tenantID {
		return &TenantIsolationError{
			ActorTenant:     actor.TenantID,
			RequestedTenant: tenantID,
		}
	}
	return nil
}
