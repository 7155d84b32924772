package services

import (
	"context"
	"errors"
	"testing"

	"feetrack/internal/core"
)

func validMember(id, name string) core.Member {
	return core.Member{
		ID:         id,
		Name:       name,
		Status:     core.StatusActive,
		MonthlyFee: 2000,
		Username:   name,
		Password:   "pw",
		Role:       core.RoleMember,
	}
}

func TestMemberAddAndList(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture(nil, nil)
	svc := NewMemberService(st, tables, nil)

	if err := svc.Add(ctx, validMember("m1", "Mario")); err != nil {
		t.Fatalf("add: %v", err)
	}
	members, err := svc.List(ctx)
	if err != nil || len(members) != 1 || members[0].Name != "Mario" {
		t.Fatalf("list: %v %v", members, err)
	}
}

func TestMemberAddRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture(nil, nil)
	svc := NewMemberService(st, tables, nil)

	if err := svc.Add(ctx, validMember("m1", "Mario")); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Duplicate detection is normalized: " M1 " collides with "m1".
	err := svc.Add(ctx, validMember(" M1 ", "Impostor"))
	if !errors.Is(err, ErrDuplicateMemberID) {
		t.Fatalf("expected ErrDuplicateMemberID, got %v", err)
	}
}

func TestMemberUpdateKeepsIdentifier(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture(nil, nil)
	svc := NewMemberService(st, tables, nil)

	if err := svc.Add(ctx, validMember("m1", "Mario")); err != nil {
		t.Fatalf("add: %v", err)
	}

	edit := validMember(" M1 ", "Mario Rossi")
	edit.Status = core.StatusInactive
	if err := svc.Update(ctx, edit); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "m1" {
		t.Fatalf("identifier must stay as created, got %q", got.ID)
	}
	if got.Name != "Mario Rossi" || got.Status != core.StatusInactive {
		t.Fatalf("edit not applied: %+v", got)
	}
}

func TestMemberUpdateUnknown(t *testing.T) {
	st, tables := newFixture(nil, nil)
	svc := NewMemberService(st, tables, nil)
	err := svc.Update(context.Background(), validMember("ghost", "Nobody"))
	if !errors.Is(err, core.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestMemberGetNormalizes(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture(nil, nil)
	svc := NewMemberService(st, tables, nil)

	if err := svc.Add(ctx, validMember("M-001", "Anna")); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.Get(ctx, " m-001 ")
	if err != nil || got.Name != "Anna" {
		t.Fatalf("get: %+v %v", got, err)
	}
}
