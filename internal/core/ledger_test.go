package core

import (
	"errors"
	"testing"
)

func testMembers() []Member {
	return []Member{
		{ID: "m1", Name: "Mario", Status: StatusActive, MonthlyFee: 2000, Username: "mario", Password: "pw", Role: RoleMember, Row: 2},
		{ID: "M2", Name: "Anna", Status: StatusActive, MonthlyFee: 1500, Username: "anna", Password: "pw", Role: RoleAdmin, Row: 3},
	}
}

func TestApplyPaymentCreatesRecord(t *testing.T) {
	today := NewDate(2025, 1, 15)
	res, err := ApplyPayment(testMembers(), nil, "m1", "Jan-25", 800, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created {
		t.Fatalf("expected a new record")
	}
	if res.Record.Paid != 800 || res.Record.Due != 1200 {
		t.Fatalf("unexpected record: %+v", res.Record)
	}
	if res.Record.PaidOn.ISO() != "2025-01-15" {
		t.Fatalf("unexpected paid-on: %q", res.Record.PaidOn.ISO())
	}
}

func TestApplyPaymentAccruesAdditively(t *testing.T) {
	members := testMembers()
	today := NewDate(2025, 1, 20)

	first, err := ApplyPayment(members, nil, "m1", "Jan-25", 800, today)
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	fees := []FeeRecord{first.Record}

	second, err := ApplyPayment(members, fees, "m1", "Jan-25", 1200, today)
	if err != nil {
		t.Fatalf("second payment: %v", err)
	}
	if second.Created {
		t.Fatalf("expected update of existing record")
	}
	if second.Record.Paid != 2000 || second.Record.Due != 0 {
		t.Fatalf("unexpected record after accrual: %+v", second.Record)
	}
}

func TestApplyPaymentNewPeriodGetsOwnRecord(t *testing.T) {
	members := testMembers()
	fees := []FeeRecord{{MemberID: "m1", Period: "Jan-25", Paid: 2000, Due: 0, Row: 2}}

	res, err := ApplyPayment(members, fees, "m1", "Feb-25", 500, NewDate(2025, 2, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created || res.Record.Paid != 500 || res.Record.Due != 1500 {
		t.Fatalf("unexpected record: created=%v %+v", res.Created, res.Record)
	}
}

func TestApplyPaymentNormalizesMemberID(t *testing.T) {
	members := testMembers()
	first, err := ApplyPayment(members, nil, " Abc ", "Jan-25", 100, Today())
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v (%+v)", err, first)
	}

	// " M1 " and "m1" must resolve to the same record.
	created, err := ApplyPayment(members, nil, " M1 ", "Jan-25", 100, Today())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := ApplyPayment(members, []FeeRecord{created.Record}, "m1", "Jan-25", 50, Today())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Created || updated.Record.Paid != 150 {
		t.Fatalf("normalization failed: created=%v %+v", updated.Created, updated.Record)
	}
}

func TestApplyPaymentZeroAmountTouchesPeriod(t *testing.T) {
	members := testMembers()
	today := NewDate(2025, 3, 1)
	res, err := ApplyPayment(members, nil, "m1", "Mar-25", 0, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Record.Paid != 0 || res.Record.Due != 2000 {
		t.Fatalf("unexpected record: %+v", res.Record)
	}
	if res.Record.PaidOn.ISO() != "2025-03-01" {
		t.Fatalf("zero payment must still stamp the date")
	}
}

func TestApplyPaymentRejectsBadInput(t *testing.T) {
	members := testMembers()
	if _, err := ApplyPayment(members, nil, "m1", "Jan-25", -1, Today()); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if _, err := ApplyPayment(members, nil, "m1", "  ", 10, Today()); !errors.Is(err, ErrEmptyPeriod) {
		t.Fatalf("expected ErrEmptyPeriod, got %v", err)
	}
	if _, err := ApplyPayment(members, nil, "ghost", "Jan-25", 10, Today()); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestApplyPaymentRecomputesDueFromCurrentFee(t *testing.T) {
	// The fee changed after the first payment: the next payment against the
	// same period recomputes due from the current fee, not the historic one.
	members := testMembers()
	fees := []FeeRecord{{MemberID: "m1", Period: "Jan-25", Paid: 800, Due: 1200, Row: 2}}
	members[0].MonthlyFee = 1000

	res, err := ApplyPayment(members, fees, "m1", "Jan-25", 0, Today())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Record.Due != 200 {
		t.Fatalf("due should follow the current fee, got %d", res.Record.Due)
	}
}

func TestFeesForMember(t *testing.T) {
	fees := []FeeRecord{
		{MemberID: "m1", Period: "Jan-25"},
		{MemberID: "M1 ", Period: "Feb-25"},
		{MemberID: "m2", Period: "Jan-25"},
	}
	mine := FeesForMember(fees, " m1")
	if len(mine) != 2 || mine[0].Period != "Jan-25" || mine[1].Period != "Feb-25" {
		t.Fatalf("unexpected records: %+v", mine)
	}
}
