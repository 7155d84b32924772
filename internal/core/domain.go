package core

import (
	"errors"
	"strings"
	"time"
)

const (
	StatusActive   MemberStatus = "Active"
	StatusInactive MemberStatus = "Inactive"

	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type (
	MemberStatus string

	Role string

	Date struct {
		time.Time
	}

	// Member is a row in the Members tab. ID is the immutable join key for
	// fee and attendance records; matching on it is always done through
	// NormalizeID to tolerate transcription variance.
	Member struct {
		ID         string
		Name       string
		Contact    string
		Status     MemberStatus
		AbsenceFee int64
		MonthlyFee int64
		Username   string
		Password   string // stored and compared in plaintext, a documented limitation
		Role       Role
		Row        int // sheet row index, 0 when not yet persisted
	}

	// FeeRecord tracks payments for one member in one billing period.
	// At most one record exists per (normalized member id, period) pair.
	FeeRecord struct {
		MemberID string
		Period   string
		Paid     int64
		Due      int64
		PaidOn   Date
		Row      int
	}

	// AttendanceRecord is provisioned in the schema but carries no business
	// logic yet.
	AttendanceRecord struct {
		Date     Date
		MemberID string
		Status   string
		Row      int
	}
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrEmptyMemberID      = errors.New("empty member id")
	ErrEmptyPeriod        = errors.New("empty period")
	ErrInvalidCredentials = errors.New("invalid credentials or inactive account")
)

// NormalizeID canonicalizes a member identifier for matching: trimmed and
// case-folded. Stored identifiers keep their original spelling.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date truncated to a calendar day.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses an ISO date (YYYY-MM-DD). Callers reading the
// loosely-typed store usually ignore the error and keep the zero value.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// ISO renders the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (m Member) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return ErrEmptyMemberID
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("empty member name")
	}
	if m.Status != StatusActive && m.Status != StatusInactive {
		return errors.New("invalid member status")
	}
	if m.Role != RoleAdmin && m.Role != RoleMember {
		return errors.New("invalid member role")
	}
	if m.MonthlyFee < 0 {
		return errors.New("monthly fee must not be negative")
	}
	if m.AbsenceFee < 0 {
		return errors.New("absence fee must not be negative")
	}
	return nil
}

// Active reports whether the member may log in and accrue fees.
func (m Member) Active() bool {
	return m.Status == StatusActive
}

// FindMember resolves an identifier against a materialized member table.
func FindMember(members []Member, id string) (Member, bool) {
	want := NormalizeID(id)
	if want == "" {
		return Member{}, false
	}
	for _, m := range members {
		if NormalizeID(m.ID) == want {
			return m, true
		}
	}
	return Member{}, false
}
