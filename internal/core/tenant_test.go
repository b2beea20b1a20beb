package core

import (
	"errors"
	"testing"
)

func TestVerifyTenantOwnership(t *testing.T) {
	actor := Actor{ID: "u1", TenantID: "tenant-a", Role: RoleTreasurer}

	if err := VerifyTenantOwnership(actor, "tenant-a"); err != nil {
		t.Fatalf("same tenant: expected ok, got %v", err)
	}

	err := VerifyTenantOwnership(actor, "tenant-b")
	var isoErr *TenantIsolationError
	if !errors.As(err, &isoErr) {
		t.Fatalf("cross tenant: expected TenantIsolationError, got %v", err)
	}
	if isoErr.ActorTenant != "tenant-a" || isoErr.RequestedTenant != "tenant-b" {
		t.Fatalf("isolation error should carry both tenants, got %+v", isoErr)
	}
}
