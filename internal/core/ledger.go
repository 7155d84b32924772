package core

import "strings"

// PaymentResult describes how a payment landed in the ledger. When Created
// is false the record already existed and Record.Row points at the row whose
// paid/due/paid-on cells must be rewritten; otherwise Record must be appended.
type PaymentResult struct {
	Record  FeeRecord
	Member  Member
	Created bool
}

// ApplyPayment applies a payment to the (member, period) slot of the ledger.
//
// Payments accumulate additively per period, so several partial payments can
// cover one period's fee. The remaining due is always recomputed from the
// member's current monthly fee, never carried forward: changing a fee does
// not rewrite history in bulk, but the next payment touching an old period
// will recompute its due against the new fee.
//
// A zero amount is a financial no-op that still stamps the period as touched.
func ApplyPayment(members []Member, fees []FeeRecord, memberID, period string, amount int64, today Date) (PaymentResult, error) {
	if amount < 0 {
		return PaymentResult{}, ErrNegativeAmount
	}
	period = strings.TrimSpace(period)
	if period == "" {
		return PaymentResult{}, ErrEmptyPeriod
	}

	member, ok := FindMember(members, memberID)
	if !ok {
		return PaymentResult{}, ErrMemberNotFound
	}

	id := NormalizeID(member.ID)
	for _, rec := range fees {
		// Exact match on period, normalized match on id.
		if NormalizeID(rec.MemberID) != id || rec.Period != period {
			continue
		}
		rec.Paid += amount
		rec.Due = remainingDue(member.MonthlyFee, rec.Paid)
		rec.PaidOn = today
		return PaymentResult{Record: rec, Member: member}, nil
	}

	rec := FeeRecord{
		MemberID: member.ID,
		Period:   period,
		Paid:     amount,
		Due:      remainingDue(member.MonthlyFee, amount),
		PaidOn:   today,
	}
	return PaymentResult{Record: rec, Member: member, Created: true}, nil
}

func remainingDue(monthlyFee, paid int64) int64 {
	if due := monthlyFee - paid; due > 0 {
		return due
	}
	return 0
}

// FeesForMember filters the ledger down to one member's records, preserving
// order of appearance.
func FeesForMember(fees []FeeRecord, memberID string) []FeeRecord {
	id := NormalizeID(memberID)
	var out []FeeRecord
	for _, rec := range fees {
		if NormalizeID(rec.MemberID) == id {
			out = append(out, rec)
		}
	}
	return out
}
