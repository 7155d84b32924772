// Package memory is an in-process RecordStore used by tests and as the
// default development backend. It mirrors the sheet layout closely enough
// that row indexes behave like they do against the real spreadsheet
// (header on row 1, data from row 2).
package memory

import (
	"context"
	"fmt"
	"sync"

	"feetrack/internal/core"
	"feetrack/internal/store"
)

type Store struct {
	mu      sync.Mutex
	members []core.Member
	fees    []core.FeeRecord
}

var _ store.RecordStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// NewWithData seeds the store, assigning row indexes in input order.
func NewWithData(members []core.Member, fees []core.FeeRecord) *Store {
	s := New()
	for _, m := range members {
		m.Row = len(s.members) + 2
		s.members = append(s.members, m)
	}
	for _, rec := range fees {
		rec.Row = len(s.fees) + 2
		s.fees = append(s.fees, rec)
	}
	return s
}

// EnsureSchema is a no-op for the in-memory backend; tabs always exist.
func (s *Store) EnsureSchema(_ context.Context) (store.SchemaReport, error) {
	return store.SchemaReport{Intact: []string{store.TabMembers, store.TabFees, store.TabAttendance}}, nil
}

func (s *Store) LoadMembers(_ context.Context) ([]core.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Member(nil), s.members...), nil
}

func (s *Store) LoadFees(_ context.Context) ([]core.FeeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.FeeRecord(nil), s.fees...), nil
}

func (s *Store) AppendMember(_ context.Context, m core.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.Row = len(s.members) + 2
	s.members = append(s.members, m)
	return nil
}

func (s *Store) UpdateMember(_ context.Context, m core.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].Row == m.Row {
			s.members[i] = m
			return nil
		}
	}
	return fmt.Errorf("update member row %d: %w", m.Row, store.ErrRowNotFound)
}

func (s *Store) AppendFee(_ context.Context, rec core.FeeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.Row = len(s.fees) + 2
	s.fees = append(s.fees, rec)
	return nil
}

func (s *Store) UpdateFeePayment(_ context.Context, rec core.FeeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.fees {
		if s.fees[i].Row == rec.Row {
			s.fees[i].Paid = rec.Paid
			s.fees[i].Due = rec.Due
			s.fees[i].PaidOn = rec.PaidOn
			return nil
		}
	}
	return fmt.Errorf("update fee row %d: %w", rec.Row, store.ErrRowNotFound)
}
