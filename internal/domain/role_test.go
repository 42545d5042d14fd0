package domain

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	if got := ParseRole("  Store_Admin "); got != RoleStoreAdmin {
		t.Fatalf("expected store_admin, got %q", got)
	}
	if ParseRole("root").IsValid() {
		t.Fatalf("expected unknown role to be invalid")
	}
}

func TestRoleHierarchy(t *testing.T) {
	t.Parallel()

	roles := Roles()
	for i := 0; i < len(roles)-1; i++ {
		if !roles[i].Outranks(roles[i+1]) {
			t.Fatalf("expected %s to outrank %s", roles[i], roles[i+1])
		}
	}

	if Role("root").Rank() != 0 {
		t.Fatalf("expected unknown role to rank 0")
	}

	for _, r := range roles {
		if r.IsSuper() == r.IsTenantBound() {
			t.Fatalf("role %s must be exactly one of super or tenant-bound", r)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	t.Parallel()

	if RoleStoreCashier.Label() != "Store Cashier" {
		t.Fatalf("unexpected label %q", RoleStoreCashier.Label())
	}
	if Role("x").Label() != "Unknown" {
		t.Fatalf("unexpected label for unknown role")
	}
}
