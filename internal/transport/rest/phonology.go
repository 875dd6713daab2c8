package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/service/phonology"
)

type phonologyService interface {
	ListRules(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
	AddRule(ctx context.Context, input phonology.AddRuleInput) (domain.PronunciationRule, error)
	UpdateRule(ctx context.Context, input phonology.UpdateRuleInput) (domain.PronunciationRule, error)
	DeleteRule(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error
	MoveRule(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64, dir domain.Direction) ([]domain.PronunciationRule, error)
	Lookarounds(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
	Pronounce(ctx context.Context, input phonology.PronounceInput) (phonology.PronounceResult, error)
}

// PhonologyHandler serves pronunciation and romanization rules.
type PhonologyHandler struct {
	svc phonologyService
	log *slog.Logger
}

// NewPhonologyHandler creates a PhonologyHandler.
func NewPhonologyHandler(svc phonologyService, log *slog.Logger) *PhonologyHandler {
	return &PhonologyHandler{svc: svc, log: log.With("handler", "phonology")}
}

type addPronunciationRuleRequest struct {
	ID       *int64 `json:"id"`
	Position *int   `json:"position"`
	Pattern  string `json:"pattern"`
	Phoneme  string `json:"phoneme"`
}

type updatePronunciationRuleRequest struct {
	Pattern *string `json:"pattern"`
	Phoneme *string `json:"phoneme"`
}

type moveRequest struct {
	Direction domain.Direction `json:"direction"`
}

type pronounceRequest struct {
	Text string `json:"text"`
}

// guideTarget parses the {lang} and {kind} segments every route here carries.
func guideTarget(r *http.Request) (uuid.UUID, domain.GuideKind, error) {
	langID, err := pathLanguage(r)
	if err != nil {
		return uuid.Nil, "", err
	}
	kind, err := pathKind(r)
	if err != nil {
		return uuid.Nil, "", err
	}
	return langID, kind, nil
}

// ListRules handles GET /languages/{lang}/guides/{kind}/rules.
func (h *PhonologyHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rules, err := h.svc.ListRules(r.Context(), langID, kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronunciationRules(rules))
}

// AddRule handles POST /languages/{lang}/guides/{kind}/rules.
func (h *PhonologyHandler) AddRule(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addPronunciationRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.AddRule(r.Context(), phonology.AddRuleInput{
		LanguageID: langID,
		Kind:       kind,
		ID:         req.ID,
		Position:   req.Position,
		Pattern:    req.Pattern,
		Phoneme:    req.Phoneme,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPronunciationRules([]domain.PronunciationRule{rule})[0])
}

// UpdateRule handles PUT /languages/{lang}/guides/{kind}/rules/{id}.
func (h *PhonologyHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updatePronunciationRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.UpdateRule(r.Context(), phonology.UpdateRuleInput{
		LanguageID: langID,
		Kind:       kind,
		ID:         id,
		Pattern:    req.Pattern,
		Phoneme:    req.Phoneme,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronunciationRules([]domain.PronunciationRule{rule})[0])
}

// DeleteRule handles DELETE /languages/{lang}/guides/{kind}/rules/{id}.
func (h *PhonologyHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteRule(r.Context(), langID, kind, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveRule handles POST /languages/{lang}/guides/{kind}/rules/{id}/move and
// returns the whole reordered guide.
func (h *PhonologyHandler) MoveRule(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rules, err := h.svc.MoveRule(r.Context(), langID, kind, id, req.Direction)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronunciationRules(rules))
}

// Lookarounds handles GET /languages/{lang}/guides/{kind}/rules/lookarounds.
func (h *PhonologyHandler) Lookarounds(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rules, err := h.svc.Lookarounds(r.Context(), langID, kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronunciationRules(rules))
}

// Pronounce handles POST /languages/{lang}/guides/{kind}/pronounce.
func (h *PhonologyHandler) Pronounce(w http.ResponseWriter, r *http.Request) {
	langID, kind, err := guideTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req pronounceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Pronounce(r.Context(), phonology.PronounceInput{
		LanguageID: langID,
		Kind:       kind,
		Text:       req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronounceResponse(res))
}
