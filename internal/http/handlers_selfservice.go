package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"feetrack/internal/core"
)

// handleSelfService renders the page behind a member's scanned code: their
// status and full payment history, plus a form to record a payment. The
// member id comes from the link itself and is the only record the page can
// reach.
func (s *Server) handleSelfService(w http.ResponseWriter, r *http.Request) {
	member, history, err := s.summaries.History(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, core.ErrMemberNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "Self-service load error", "error", err)
		http.Error(w, "failed to load member", http.StatusInternalServerError)
		return
	}

	var totalPaid, totalDue int64
	for _, rec := range history {
		totalPaid += rec.Paid
		totalDue += rec.Due
	}

	s.render(w, r, "selfservice.html", struct {
		Member    core.Member
		History   []core.FeeRecord
		TotalPaid int64
		TotalDue  int64
		Error     string
		Message   string
	}{
		Member:    member,
		History:   history,
		TotalPaid: totalPaid,
		TotalDue:  totalDue,
		Error:     r.URL.Query().Get("err"),
		Message:   r.URL.Query().Get("msg"),
	})
}

// handleSelfServicePay records a payment for the member named in the link.
// Any member id in the form body is ignored: the path is the capability.
func (s *Server) handleSelfServicePay(w http.ResponseWriter, r *http.Request) {
	memberID := core.NormalizeID(r.PathValue("id"))
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	period := sanitizeInput(r.Form.Get("period"))
	amount, err := parseAmount(r.Form.Get("amount"))
	if err != nil {
		redirectSelfService(w, r, memberID, "err", err.Error())
		return
	}

	_, err = s.ledger.RecordPayment(r.Context(), memberID, period, amount, true)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMemberNotFound):
			http.NotFound(w, r)
		case errors.Is(err, core.ErrEmptyPeriod), errors.Is(err, core.ErrNegativeAmount):
			redirectSelfService(w, r, memberID, "err", err.Error())
		default:
			slog.ErrorContext(r.Context(), "Self-service payment error", "error", err, "member_id", memberID)
			http.Error(w, "failed to record payment", http.StatusInternalServerError)
		}
		return
	}

	redirectSelfService(w, r, memberID, "msg", "Payment recorded")
}

func redirectSelfService(w http.ResponseWriter, r *http.Request, memberID, key, msg string) {
	http.Redirect(w, r, "/m/"+url.PathEscape(memberID)+"?"+key+"="+url.QueryEscape(msg), http.StatusSeeOther)
}
