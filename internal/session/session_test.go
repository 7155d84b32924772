package session

import (
	"testing"

	"feetrack/internal/core"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	token := s.Create(core.Identity{MemberID: "m1", Name: "Mario", Role: core.RoleAdmin})
	if token == "" {
		t.Fatalf("empty token")
	}

	id, ok := s.Lookup(token)
	if !ok || id.MemberID != "m1" || !id.IsAdmin() {
		t.Fatalf("unexpected identity: ok=%v %+v", ok, id)
	}

	s.Destroy(token)
	if _, ok := s.Lookup(token); ok {
		t.Fatalf("session survived destroy")
	}
	s.Destroy(token) // idempotent
}

func TestTokensAreUnique(t *testing.T) {
	s := NewStore()
	a := s.Create(core.Identity{MemberID: "m1"})
	b := s.Create(core.Identity{MemberID: "m1"})
	if a == b {
		t.Fatalf("tokens must be unique")
	}
	if s.Count() != 2 {
		t.Fatalf("expected 2 sessions, got %d", s.Count())
	}
}

func TestLookupUnknownToken(t *testing.T) {
	if _, ok := NewStore().Lookup("nope"); ok {
		t.Fatalf("unknown token must not resolve")
	}
}
