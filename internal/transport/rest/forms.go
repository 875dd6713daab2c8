package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/service/grammar"
)

type formService interface {
	Paradigm(ctx context.Context, langID uuid.UUID, wordID int64) ([]declension.Cell, error)
	Decline(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) (domain.Form, error)
	SetOverride(ctx context.Context, input grammar.SetOverrideInput) (domain.DeclensionNode, error)
	ClearOverride(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) error
	RequirementsMet(ctx context.Context, langID uuid.UUID, wordID int64) ([]domain.Violation, error)
	DeprecatedForms(ctx context.Context, langID uuid.UUID, wordID int64) (domain.WordForms, error)
}

// FormHandler serves the declined forms of a single word.
type FormHandler struct {
	svc formService
	log *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(svc formService, log *slog.Logger) *FormHandler {
	return &FormHandler{svc: svc, log: log.With("handler", "forms")}
}

type overrideRequest struct {
	Value string `json:"value"`
	Notes string `json:"notes"`
}

type requirementsResponse struct {
	Met        bool                `json:"met"`
	Violations []violationResponse `json:"violations"`
}

// formTarget parses {lang}, {id} and {comb}.
func formTarget(r *http.Request) (uuid.UUID, int64, domain.CombinationID, error) {
	langID, wordID, err := langAnd(r, "id")
	if err != nil {
		return uuid.Nil, 0, "", err
	}
	comb, err := pathCombination(r)
	if err != nil {
		return uuid.Nil, 0, "", err
	}
	return langID, wordID, comb, nil
}

// Paradigm handles GET /languages/{lang}/words/{id}/forms.
func (h *FormHandler) Paradigm(w http.ResponseWriter, r *http.Request) {
	langID, wordID, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cells, err := h.svc.Paradigm(r.Context(), langID, wordID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCells(cells))
}

// Decline handles GET /languages/{lang}/words/{id}/forms/{comb}.
func (h *FormHandler) Decline(w http.ResponseWriter, r *http.Request) {
	langID, wordID, comb, err := formTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	form, err := h.svc.Decline(r.Context(), langID, wordID, comb)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cellResponse{
		CombinationID: string(comb),
		Value:         form.Value,
		Source:        form.Source.String(),
		RuleID:        form.RuleID,
	})
}

// SetOverride handles PUT /languages/{lang}/words/{id}/forms/{comb}.
func (h *FormHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	langID, wordID, comb, err := formTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req overrideRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	node, err := h.svc.SetOverride(r.Context(), grammar.SetOverrideInput{
		LanguageID:    langID,
		WordID:        wordID,
		CombinationID: comb,
		Value:         req.Value,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverrides(domain.WordForms{node})[0])
}

// ClearOverride handles DELETE /languages/{lang}/words/{id}/forms/{comb}.
func (h *FormHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	langID, wordID, comb, err := formTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.ClearOverride(r.Context(), langID, wordID, comb); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Requirements handles GET /languages/{lang}/words/{id}/requirements.
func (h *FormHandler) Requirements(w http.ResponseWriter, r *http.Request) {
	langID, wordID, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	vs, err := h.svc.RequirementsMet(r.Context(), langID, wordID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requirementsResponse{Met: len(vs) == 0, Violations: toViolations(vs)})
}

// DeprecatedForms handles GET /languages/{lang}/words/{id}/deprecated-forms:
// overrides stored for combinations the paradigm no longer has.
func (h *FormHandler) DeprecatedForms(w http.ResponseWriter, r *http.Request) {
	langID, wordID, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	forms, err := h.svc.DeprecatedForms(r.Context(), langID, wordID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverrides(forms))
}
