package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"feetrack/internal/core"
	"feetrack/internal/services"
)

func (s *Server) handleMembersPage(w http.ResponseWriter, r *http.Request) {
	members, err := s.members.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Member list error", "error", err)
		http.Error(w, "failed to load members", http.StatusInternalServerError)
		return
	}

	data := struct {
		Members []core.Member
		Error   string
		Message string
	}{
		Members: members,
		Error:   r.URL.Query().Get("err"),
		Message: r.URL.Query().Get("msg"),
	}
	s.render(w, r, "members.html", data)
}

func (s *Server) handleMemberAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	m := memberFromForm(r)

	if err := s.members.Add(r.Context(), m); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateMemberID):
			redirectMembersError(w, r, "A member with that ID already exists.")
		case isValidationError(err):
			redirectMembersError(w, r, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Member add error", "error", err, "member_id", m.ID)
			http.Error(w, "failed to save member", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/members?msg="+url.QueryEscape("Member "+m.Name+" added"), http.StatusSeeOther)
}

func (s *Server) handleMemberEditPage(w http.ResponseWriter, r *http.Request) {
	m, err := s.members.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, core.ErrMemberNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "Member lookup error", "error", err)
		http.Error(w, "failed to load member", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "member_edit.html", struct {
		Member core.Member
		Error  string
	}{Member: m, Error: r.URL.Query().Get("err")})
}

func (s *Server) handleMemberUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	m := memberFromForm(r)
	m.ID = r.PathValue("id")

	if err := s.members.Update(r.Context(), m); err != nil {
		switch {
		case errors.Is(err, core.ErrMemberNotFound):
			http.NotFound(w, r)
		case isValidationError(err):
			http.Redirect(w, r, "/members/"+url.PathEscape(core.NormalizeID(m.ID))+"/edit?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		default:
			slog.ErrorContext(r.Context(), "Member update error", "error", err, "member_id", m.ID)
			http.Error(w, "failed to save member", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/members?msg="+url.QueryEscape("Member "+m.Name+" updated"), http.StatusSeeOther)
}

func memberFromForm(r *http.Request) core.Member {
	status := core.MemberStatus(sanitizeInput(r.Form.Get("status")))
	if status == "" {
		status = core.StatusActive
	}
	role := core.Role(sanitizeInput(r.Form.Get("role")))
	if role == "" {
		role = core.RoleMember
	}
	return core.Member{
		ID:         sanitizeInput(r.Form.Get("id")),
		Name:       sanitizeInput(r.Form.Get("name")),
		Contact:    sanitizeInput(r.Form.Get("contact")),
		Status:     status,
		AbsenceFee: core.CoerceInt(r.Form.Get("absence_fee"), 0),
		MonthlyFee: core.CoerceInt(r.Form.Get("monthly_fee"), 0),
		Username:   sanitizeInput(r.Form.Get("username")),
		Password:   r.Form.Get("password"),
		Role:       role,
	}
}

// isValidationError separates user-fixable input problems from backend
// failures so handlers can show the message instead of a 500.
func isValidationError(err error) bool {
	for _, known := range []error{
		core.ErrEmptyMemberID,
		core.ErrEmptyPeriod,
		core.ErrNegativeAmount,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	// Member.Validate returns ad-hoc errors for the remaining fields.
	msg := err.Error()
	for _, frag := range []string{"empty member name", "invalid member status", "invalid member role", "must not be negative"} {
		if strings.Contains(msg, frag) {
			return true
		}
	}
	return false
}

func redirectMembersError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/members?err="+url.QueryEscape(msg), http.StatusSeeOther)
}
