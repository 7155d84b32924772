package http

import (
	"log/slog"
	"net/http"

	"feetrack/internal/core"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	periods, totals, err := s.summaries.ByPeriod(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Period summary error", "error", err)
		http.Error(w, "failed to load summaries", http.StatusInternalServerError)
		return
	}
	byMember, err := s.summaries.ByMember(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Member summary error", "error", err)
		http.Error(w, "failed to load summaries", http.StatusInternalServerError)
		return
	}

	data := struct {
		Periods  []core.PeriodSummary
		ByMember []core.MemberSummary
		Totals   core.Totals
		Message  string
	}{
		Periods:  periods,
		ByMember: byMember,
		Totals:   totals,
		Message:  r.URL.Query().Get("msg"),
	}
	s.render(w, r, "dashboard.html", data)
}

// handleRefresh drops the cached tables so the next page load re-reads the
// backing spreadsheet. Useful after out-of-band edits.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.tables.InvalidateAll()
	slog.InfoContext(r.Context(), "Caches invalidated on request")
	http.Redirect(w, r, "/?msg=Data+refreshed", http.StatusSeeOther)
}
