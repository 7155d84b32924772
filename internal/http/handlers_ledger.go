package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"feetrack/internal/core"
)

func (s *Server) handleFeesPage(w http.ResponseWriter, r *http.Request) {
	members, fees, err := s.summaries.Ledger(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load error", "error", err)
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	data := struct {
		Members []core.Member
		Fees    []core.FeeRecord
		Error   string
		Message string
	}{
		Members: members,
		Fees:    fees,
		Error:   r.URL.Query().Get("err"),
		Message: r.URL.Query().Get("msg"),
	}
	s.render(w, r, "fees.html", data)
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	memberID := sanitizeInput(r.Form.Get("member_id"))
	period := sanitizeInput(r.Form.Get("period"))
	amount, err := parseAmount(r.Form.Get("amount"))
	if err != nil {
		redirectFeesError(w, r, err.Error())
		return
	}

	res, err := s.ledger.RecordPayment(r.Context(), memberID, period, amount, false)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMemberNotFound):
			redirectFeesError(w, r, "No member with that ID.")
		case errors.Is(err, core.ErrEmptyPeriod), errors.Is(err, core.ErrEmptyMemberID), errors.Is(err, core.ErrNegativeAmount):
			redirectFeesError(w, r, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Payment record error", "error", err, "member_id", memberID, "period", period)
			http.Error(w, "failed to record payment", http.StatusInternalServerError)
		}
		return
	}

	msg := "Payment recorded for " + res.Member.Name + " (" + res.Record.Period + ")"
	http.Redirect(w, r, "/fees?msg="+url.QueryEscape(msg), http.StatusSeeOther)
}

// handleMyPayments shows the logged-in member their own status and history.
// Admins land here too when they follow a member-facing link.
func (s *Server) handleMyPayments(w http.ResponseWriter, r *http.Request) {
	id, _ := s.currentIdentity(r)

	member, history, err := s.summaries.History(r.Context(), id.MemberID)
	if err != nil {
		if errors.Is(err, core.ErrMemberNotFound) {
			// Account removed while the session was live.
			s.handleLogout(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "Payment history error", "error", err, "member_id", id.MemberID)
		http.Error(w, "failed to load payments", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "me.html", struct {
		Member  core.Member
		History []core.FeeRecord
	}{Member: member, History: history})
}

func redirectFeesError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/fees?err="+url.QueryEscape(msg), http.StatusSeeOther)
}
