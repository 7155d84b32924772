package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"feetrack/internal/core"
	"feetrack/internal/events"
	"feetrack/internal/store"
)

var ErrDuplicateMemberID = errors.New("member id already exists")

// MemberService manages the Members tab: list, add, edit. Members are never
// hard-deleted; flipping Status to Inactive is the deactivation mechanism.
type MemberService struct {
	store  store.RecordStore
	tables *Tables
	events *events.Client // optional
}

func NewMemberService(rs store.RecordStore, tables *Tables, ev *events.Client) *MemberService {
	return &MemberService{store: rs, tables: tables, events: ev}
}

func (s *MemberService) List(ctx context.Context) ([]core.Member, error) {
	return s.tables.Members.Get(ctx)
}

// Get resolves one member by identifier, normalized.
func (s *MemberService) Get(ctx context.Context, id string) (core.Member, error) {
	members, err := s.tables.Members.Get(ctx)
	if err != nil {
		return core.Member{}, fmt.Errorf("load members: %w", err)
	}
	m, ok := core.FindMember(members, id)
	if !ok {
		return core.Member{}, core.ErrMemberNotFound
	}
	return m, nil
}

// Add appends a new member. The identifier must be unique under
// normalization; it becomes immutable once created.
func (s *MemberService) Add(ctx context.Context, m core.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	members, err := s.tables.Members.Get(ctx)
	if err != nil {
		return fmt.Errorf("load members: %w", err)
	}
	if _, exists := core.FindMember(members, m.ID); exists {
		return fmt.Errorf("add member %q: %w", m.ID, ErrDuplicateMemberID)
	}

	if err := s.store.AppendMember(ctx, m); err != nil {
		return fmt.Errorf("append member: %w", err)
	}
	s.tables.Members.Invalidate()

	slog.InfoContext(ctx, "Member added", "member_id", core.NormalizeID(m.ID), "name", m.Name)
	s.publishCreated(ctx, m)
	return nil
}

// Update rewrites an existing member's row. The identifier cannot change:
// the stored row keeps the ID it was created with.
func (s *MemberService) Update(ctx context.Context, m core.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	current, err := s.Get(ctx, m.ID)
	if err != nil {
		return err
	}
	m.ID = current.ID // immutable join key
	m.Row = current.Row

	if err := s.store.UpdateMember(ctx, m); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	s.tables.Members.Invalidate()

	slog.InfoContext(ctx, "Member updated", "member_id", core.NormalizeID(m.ID))
	return nil
}

func (s *MemberService) publishCreated(ctx context.Context, m core.Member) {
	if s.events == nil {
		return
	}
	msg := events.NewMemberCreatedMessage(core.NormalizeID(m.ID), m.Name)
	if err := s.events.PublishMemberCreated(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish member event", "error", err)
	}
}
