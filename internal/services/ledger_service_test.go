package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"feetrack/internal/core"
	"feetrack/internal/store/memory"
)

func newFixture(members []core.Member, fees []core.FeeRecord) (*memory.Store, *Tables) {
	st := memory.NewWithData(members, fees)
	return st, NewTables(st, time.Minute)
}

func TestRecordPaymentEndToEnd(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture([]core.Member{
		{ID: "m1", Name: "Mario", Status: core.StatusActive, MonthlyFee: 2000, Username: "mario", Password: "pw", Role: core.RoleMember},
	}, nil)
	svc := NewLedgerService(st, tables, nil)

	// Payment 1: new record for Jan-25.
	res, err := svc.RecordPayment(ctx, "m1", "Jan-25", 800, false)
	if err != nil {
		t.Fatalf("payment 1: %v", err)
	}
	if !res.Created || res.Record.Paid != 800 || res.Record.Due != 1200 {
		t.Fatalf("payment 1: %+v", res)
	}

	// Payment 2: accrues into the same record.
	res, err = svc.RecordPayment(ctx, "m1", "Jan-25", 1200, false)
	if err != nil {
		t.Fatalf("payment 2: %v", err)
	}
	if res.Created || res.Record.Paid != 2000 || res.Record.Due != 0 {
		t.Fatalf("payment 2: %+v", res)
	}

	// Payment 3: a new period gets its own record.
	res, err = svc.RecordPayment(ctx, "m1", "Feb-25", 500, true)
	if err != nil {
		t.Fatalf("payment 3: %v", err)
	}
	if !res.Created || res.Record.Paid != 500 || res.Record.Due != 1500 {
		t.Fatalf("payment 3: %+v", res)
	}

	fees, _ := st.LoadFees(ctx)
	if len(fees) != 2 {
		t.Fatalf("expected 2 persisted records, got %d", len(fees))
	}
}

func TestRecordPaymentInvalidatesFeeCache(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture([]core.Member{
		{ID: "m1", Name: "Mario", Status: core.StatusActive, MonthlyFee: 2000, Role: core.RoleMember},
	}, nil)
	svc := NewLedgerService(st, tables, nil)
	summaries := NewSummaryService(tables)

	// Prime the cache with an empty ledger.
	if periods, _, err := summaries.ByPeriod(ctx); err != nil || len(periods) != 0 {
		t.Fatalf("prime: %v %v", periods, err)
	}

	if _, err := svc.RecordPayment(ctx, "m1", "Jan-25", 800, false); err != nil {
		t.Fatalf("payment: %v", err)
	}

	periods, totals, err := summaries.ByPeriod(ctx)
	if err != nil || len(periods) != 1 {
		t.Fatalf("expected fresh read-model after write: %v %v", periods, err)
	}
	if totals.Received != 800 || totals.Due != 1200 || totals.Expected != 2000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestRecordPaymentNormalizedLookupHitsSameRecord(t *testing.T) {
	ctx := context.Background()
	st, tables := newFixture([]core.Member{
		{ID: "m1", Name: "Mario", Status: core.StatusActive, MonthlyFee: 2000, Role: core.RoleMember},
	}, nil)
	svc := NewLedgerService(st, tables, nil)

	if _, err := svc.RecordPayment(ctx, " M1 ", "Jan-25", 100, false); err != nil {
		t.Fatalf("payment 1: %v", err)
	}
	res, err := svc.RecordPayment(ctx, "m1", "Jan-25", 50, false)
	if err != nil {
		t.Fatalf("payment 2: %v", err)
	}
	if res.Created || res.Record.Paid != 150 {
		t.Fatalf("expected accrual into same record: %+v", res)
	}
}

func TestRecordPaymentUnknownMember(t *testing.T) {
	st, tables := newFixture(nil, nil)
	svc := NewLedgerService(st, tables, nil)
	_, err := svc.RecordPayment(context.Background(), "ghost", "Jan-25", 100, false)
	if !errors.Is(err, core.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestSummaryHistory(t *testing.T) {
	ctx := context.Background()
	_, tables := newFixture(
		[]core.Member{{ID: "m1", Name: "Mario", Status: core.StatusActive, MonthlyFee: 2000, Role: core.RoleMember}},
		[]core.FeeRecord{
			{MemberID: "m1", Period: "Jan-25", Paid: 800, Due: 1200},
			{MemberID: "m2", Period: "Jan-25", Paid: 100, Due: 0},
		})
	summaries := NewSummaryService(tables)

	m, fees, err := summaries.History(ctx, " M1 ")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if m.Name != "Mario" || len(fees) != 1 || fees[0].Paid != 800 {
		t.Fatalf("unexpected history: %+v %+v", m, fees)
	}

	if _, _, err := summaries.History(ctx, "ghost"); !errors.Is(err, core.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
