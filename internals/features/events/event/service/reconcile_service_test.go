package service

import (
	"testing"

	"github.com/google/uuid"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func contains(list []uuid.UUID, id uuid.UUID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func TestDiffMembershipAddRemove(t *testing.T) {
	all := ids(3)
	a, b, c := all[0], all[1], all[2]

	// [a,b] -> [b,c]: a removed, c added, b untouched
	added, removed := DiffMembership([]uuid.UUID{a, b}, []uuid.UUID{b, c})

	if len(added) != 1 || !contains(added, c) {
		t.Fatalf("added = %v, want [%v]", added, c)
	}
	if len(removed) != 1 || !contains(removed, a) {
		t.Fatalf("removed = %v, want [%v]", removed, a)
	}
}

func TestDiffMembershipNoChange(t *testing.T) {
	list := ids(2)
	added, removed := DiffMembership(list, list)
	if len(added) != 0 || len(removed) != 0 {
		t.Fatalf("expected no diff, got added=%v removed=%v", added, removed)
	}
}

func TestDiffMembershipFromEmpty(t *testing.T) {
	list := ids(2)
	added, removed := DiffMembership(nil, list)
	if len(added) != 2 {
		t.Fatalf("added = %v, want both IDs", added)
	}
	if len(removed) != 0 {
		t.Fatalf("removed = %v, want none", removed)
	}
}

func TestDiffMembershipToEmpty(t *testing.T) {
	list := ids(2)
	added, removed := DiffMembership(list, nil)
	if len(added) != 0 {
		t.Fatalf("added = %v, want none", added)
	}
	if len(removed) != 2 {
		t.Fatalf("removed = %v, want both IDs", removed)
	}
}
