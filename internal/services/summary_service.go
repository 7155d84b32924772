package services

import (
	"context"
	"fmt"

	"feetrack/internal/core"
)

// SummaryService builds the read models: per-period and per-member
// aggregates plus identifier-scoped payment history. All reads go through
// the cached tables; this service never writes.
type SummaryService struct {
	tables *Tables
}

func NewSummaryService(tables *Tables) *SummaryService {
	return &SummaryService{tables: tables}
}

func (s *SummaryService) load(ctx context.Context) ([]core.Member, []core.FeeRecord, error) {
	members, err := s.tables.Members.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load members: %w", err)
	}
	fees, err := s.tables.Fees.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load fees: %w", err)
	}
	return members, fees, nil
}

func (s *SummaryService) ByPeriod(ctx context.Context) ([]core.PeriodSummary, core.Totals, error) {
	members, fees, err := s.load(ctx)
	if err != nil {
		return nil, core.Totals{}, err
	}
	periods := core.SummarizeByPeriod(members, fees)
	return periods, core.SumPeriods(periods), nil
}

func (s *SummaryService) ByMember(ctx context.Context) ([]core.MemberSummary, error) {
	members, fees, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return core.SummarizeByMember(members, fees), nil
}

// History returns one member's fee records together with the resolved
// member, for both the logged-in "my payments" page and the self-service
// view.
func (s *SummaryService) History(ctx context.Context, memberID string) (core.Member, []core.FeeRecord, error) {
	members, fees, err := s.load(ctx)
	if err != nil {
		return core.Member{}, nil, err
	}
	m, ok := core.FindMember(members, memberID)
	if !ok {
		return core.Member{}, nil, core.ErrMemberNotFound
	}
	return m, core.FeesForMember(fees, memberID), nil
}

// Ledger returns the full raw tables for the admin fees page and exports.
func (s *SummaryService) Ledger(ctx context.Context) ([]core.Member, []core.FeeRecord, error) {
	return s.load(ctx)
}
