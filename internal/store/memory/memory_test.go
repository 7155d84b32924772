package memory

import (
	"context"
	"errors"
	"testing"

	"feetrack/internal/core"
	"feetrack/internal/store"
)

func TestAppendAndLoadMembers(t *testing.T) {
	s := New()
	ctx := context.Background()

	m := core.Member{ID: "m1", Name: "Mario", Status: core.StatusActive, MonthlyFee: 2000, Role: core.RoleMember}
	if err := s.AppendMember(ctx, m); err != nil {
		t.Fatalf("append: %v", err)
	}

	members, err := s.LoadMembers(ctx)
	if err != nil || len(members) != 1 {
		t.Fatalf("load: %v %v", members, err)
	}
	if members[0].Row != 2 {
		t.Fatalf("first data row should be 2, got %d", members[0].Row)
	}
}

func TestAppendMemberValidates(t *testing.T) {
	if err := New().AppendMember(context.Background(), core.Member{}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestUpdateMember(t *testing.T) {
	ctx := context.Background()
	s := NewWithData([]core.Member{{ID: "m1", Name: "Mario", Status: core.StatusActive, Role: core.RoleMember}}, nil)

	members, _ := s.LoadMembers(ctx)
	updated := members[0]
	updated.Status = core.StatusInactive
	if err := s.UpdateMember(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	members, _ = s.LoadMembers(ctx)
	if members[0].Status != core.StatusInactive {
		t.Fatalf("status not updated: %+v", members[0])
	}

	updated.Row = 99
	if err := s.UpdateMember(ctx, updated); !errors.Is(err, store.ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestUpdateFeePaymentOnlyTouchesPaymentCells(t *testing.T) {
	ctx := context.Background()
	s := NewWithData(nil, []core.FeeRecord{{MemberID: "m1", Period: "Jan-25", Paid: 800, Due: 1200}})

	fees, _ := s.LoadFees(ctx)
	rec := fees[0]
	rec.Paid = 2000
	rec.Due = 0
	rec.PaidOn = core.NewDate(2025, 1, 31)
	rec.MemberID = "tampered" // must be ignored by the cell-level update

	if err := s.UpdateFeePayment(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}
	fees, _ = s.LoadFees(ctx)
	got := fees[0]
	if got.MemberID != "m1" {
		t.Fatalf("member id cell must not change, got %q", got.MemberID)
	}
	if got.Paid != 2000 || got.Due != 0 || got.PaidOn.ISO() != "2025-01-31" {
		t.Fatalf("payment cells not updated: %+v", got)
	}
}

func TestLoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewWithData([]core.Member{{ID: "m1", Name: "Mario", Status: core.StatusActive, Role: core.RoleMember}}, nil)

	members, _ := s.LoadMembers(ctx)
	members[0].Name = "mutated"
	again, _ := s.LoadMembers(ctx)
	if again[0].Name != "Mario" {
		t.Fatalf("store leaked internal slice")
	}
}
