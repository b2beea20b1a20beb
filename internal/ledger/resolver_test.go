package ledger

import (
	"context"
	"errors"
	"testing"

	"tally/internal/core"
)

type fakeUserStore struct {
	users   map[string]UserRecord
	queried int
}

func (f *fakeUserStore) FindUserByID(_ context.Context, id string) (UserRecord, error) {
	f.queried++
	rec, ok := f.users[id]
	if !ok {
		return UserRecord{}, ErrUserNotFound
	}
	return rec, nil
}

func TestResolve(t *testing.T) {
	store := &fakeUserStore{users: map[string]UserRecord{
		"u1": {ID: "u1", Email: "t@org.test", TenantID: "tenant-a", Role: "treasurer"},
	}}
	resolver := NewIdentityResolver(store)

	actor, err := resolver.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if actor.TenantID != "tenant-a" || actor.Role != core.RoleTreasurer {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestResolveMalformedSkipsStore(t *testing.T) {
	store := &fakeUserStore{}
	resolver := NewIdentityResolver(store)

	for _, raw := range []string{"", "   ", "\t"} {
		_, err := resolver.Resolve(context.Background(), raw)
		var idErr *core.IdentityError
		if !errors.As(err, &idErr) || idErr.Kind != core.IdentityMalformed {
			t.Fatalf("raw %q: expected malformed IdentityError, got %v", raw, err)
		}
	}
	if store.queried != 0 {
		t.Fatalf("obviously-bad ids must not hit the store, got %d queries", store.queried)
	}
}

func TestResolveNotFound(t *testing.T) {
	resolver := NewIdentityResolver(&fakeUserStore{})

	_, err := resolver.Resolve(context.Background(), "ghost")
	var idErr *core.IdentityError
	if !errors.As(err, &idErr) || idErr.Kind != core.IdentityNotFound {
		t.Fatalf("expected not_found IdentityError, got %v", err)
	}
}

func TestResolveInvalidRecord(t *testing.T) {
	cases := []struct {
		name string
		rec  UserRecord
	}{
		{"missing tenant", UserRecord{ID: "u1", Role: "treasurer"}},
		{"missing role", UserRecord{ID: "u1", TenantID: "tenant-a"}},
		{"unknown role", UserRecord{ID: "u1", TenantID: "tenant-a", Role: "superadmin"}},
	}
	for _, tc := range cases {
		resolver := NewIdentityResolver(&fakeUserStore{users: map[string]UserRecord{"u1": tc.rec}})
		_, err := resolver.Resolve(context.Background(), "u1")
		var idErr *core.IdentityError
		if !errors.As(err, &idErr) || idErr.Kind != core.IdentityInvalid {
			t.Fatalf("%s: expected invalid IdentityError, got %v", tc.name, err)
		}
	}
}
