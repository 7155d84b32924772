package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"feetrack/internal/export"
)

func (s *Server) handleExportWorkbook(w http.ResponseWriter, r *http.Request) {
	members, fees, err := s.summaries.Ledger(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Workbook export load error", "error", err)
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	data, err := export.BuildWorkbook(members, fees)
	if err != nil {
		slog.ErrorContext(r.Context(), "Workbook build error", "error", err)
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="fees.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) handleExportCodes(w http.ResponseWriter, r *http.Request) {
	members, err := s.members.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Code export load error", "error", err)
		http.Error(w, "failed to load members", http.StatusInternalServerError)
		return
	}

	data, err := export.BuildCodeArchive(members, s.baseURL)
	if err != nil {
		slog.ErrorContext(r.Context(), "Code archive build error", "error", err)
		http.Error(w, "failed to build archive", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="qrcodes.zip"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
