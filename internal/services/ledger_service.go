package services

import (
	"context"
	"fmt"
	"log/slog"

	"feetrack/internal/core"
	"feetrack/internal/events"
	"feetrack/internal/store"
)

// LedgerService owns the one mutation of the fee ledger. Both the
// authenticated admin pages and the unauthenticated self-service path call
// it; the capability difference lives entirely in the callers (the
// self-service handler can only name the member baked into its link).
type LedgerService struct {
	store  store.RecordStore
	tables *Tables
	events *events.Client // optional; nil disables publishing
}

func NewLedgerService(rs store.RecordStore, tables *Tables, ev *events.Client) *LedgerService {
	return &LedgerService{store: rs, tables: tables, events: ev}
}

// RecordPayment applies a payment to the (member, period) slot: additive
// accrual on an existing record, append otherwise. The fee cache is
// invalidated after the write so the next read-model build sees fresh data.
func (s *LedgerService) RecordPayment(ctx context.Context, memberID, period string, amount int64, selfService bool) (core.PaymentResult, error) {
	members, err := s.tables.Members.Get(ctx)
	if err != nil {
		return core.PaymentResult{}, fmt.Errorf("load members: %w", err)
	}
	fees, err := s.tables.Fees.Get(ctx)
	if err != nil {
		return core.PaymentResult{}, fmt.Errorf("load fees: %w", err)
	}

	res, err := core.ApplyPayment(members, fees, memberID, period, amount, core.Today())
	if err != nil {
		return core.PaymentResult{}, err
	}

	if res.Created {
		err = s.store.AppendFee(ctx, res.Record)
	} else {
		err = s.store.UpdateFeePayment(ctx, res.Record)
	}
	if err != nil {
		return core.PaymentResult{}, fmt.Errorf("write fee record: %w", err)
	}
	s.tables.Fees.Invalidate()

	slog.InfoContext(ctx, "Payment recorded",
		"member_id", core.NormalizeID(res.Member.ID),
		"period", res.Record.Period,
		"amount", amount,
		"paid", res.Record.Paid,
		"due", res.Record.Due,
		"created", res.Created,
		"self_service", selfService)

	s.publishPayment(ctx, res, amount, selfService)
	return res, nil
}

func (s *LedgerService) publishPayment(ctx context.Context, res core.PaymentResult, amount int64, selfService bool) {
	if s.events == nil {
		return
	}
	msg := events.NewPaymentRecordedMessage(
		core.NormalizeID(res.Member.ID), res.Record.Period, amount, res.Record.Paid, res.Record.Due, selfService)
	if err := s.events.PublishPaymentRecorded(ctx, msg); err != nil {
		// The ledger write already succeeded; a broker outage must not fail it.
		slog.ErrorContext(ctx, "Failed to publish payment event", "error", err)
	}
}
