package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/service/report"
)

type reportService interface {
	Generate(ctx context.Context, langID uuid.UUID) (report.Report, error)
}

// ReportHandler serves the whole-lexicon report.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, log *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log.With("handler", "report")}
}

// Generate handles GET /languages/{lang}/report.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.Generate(r.Context(), langID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}
