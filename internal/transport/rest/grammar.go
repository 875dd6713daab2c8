package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/service/grammar"
)

type grammarService interface {
	ListTemplates(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionTemplate, error)
	CreateTemplate(ctx context.Context, input grammar.CreateTemplateInput) (domain.DeclensionTemplate, error)
	UpdateTemplate(ctx context.Context, input grammar.UpdateTemplateInput) (domain.DeclensionTemplate, error)
	DeleteTemplate(ctx context.Context, langID uuid.UUID, typeID, id int64) error
	MoveTemplate(ctx context.Context, langID uuid.UUID, typeID, id int64, dir domain.Direction) ([]domain.DeclensionTemplate, error)
	AddDimension(ctx context.Context, input grammar.AddDimensionInput) (domain.DeclensionDimension, error)
	DeleteDimension(ctx context.Context, langID uuid.UUID, id int64) error
	Combinations(ctx context.Context, langID uuid.UUID, typeID int64) ([]grammar.CombinationView, error)
	SetSuppressed(ctx context.Context, langID uuid.UUID, typeID int64, id domain.CombinationID, suppressed bool) error

	ListRules(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionRule, error)
	AddRule(ctx context.Context, input grammar.AddRuleInput) (domain.DeclensionRule, error)
	UpdateRule(ctx context.Context, input grammar.UpdateRuleInput) (domain.DeclensionRule, error)
	DeleteRule(ctx context.Context, langID uuid.UUID, typeID, id int64) error
	MoveRule(ctx context.Context, langID uuid.UUID, typeID, id int64, dir domain.Direction) ([]domain.DeclensionRule, error)
	AddTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, t domain.Transform) (domain.DeclensionRule, error)
	UpdateTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, i int, t domain.Transform) (domain.DeclensionRule, error)
	DeleteTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, i int) (domain.DeclensionRule, error)
	MoveTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, i int, dir domain.Direction) (domain.DeclensionRule, error)
	SetApplyToAllClasses(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, all bool) (domain.DeclensionRule, error)
	SetClassFilter(ctx context.Context, langID uuid.UUID, typeID, ruleID, classID, valueID int64) (domain.DeclensionRule, error)
	RemoveClassFilter(ctx context.Context, langID uuid.UUID, typeID, ruleID, classID int64) (domain.DeclensionRule, error)
	EvolveRules(ctx context.Context, input grammar.EvolveInput) (grammar.EvolveResult, error)
	DeprecatedRules(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionRule, error)
}

// GrammarHandler serves the declension paradigm of a part of speech:
// templates, combinations and rules.
type GrammarHandler struct {
	svc grammarService
	log *slog.Logger
}

// NewGrammarHandler creates a GrammarHandler.
func NewGrammarHandler(svc grammarService, log *slog.Logger) *GrammarHandler {
	return &GrammarHandler{svc: svc, log: log.With("handler", "grammar")}
}

type dimensionRequest struct {
	Name      string `json:"name"`
	Mandatory bool   `json:"mandatory"`
}

type createTemplateRequest struct {
	Name          string             `json:"name"`
	Notes         string             `json:"notes"`
	Mandatory     bool               `json:"mandatory"`
	Singleton     bool               `json:"singleton"`
	CombinationID string             `json:"combinationId"`
	Dimensions    []dimensionRequest `json:"dimensions"`
}

type updateTemplateRequest struct {
	Name      *string `json:"name"`
	Notes     *string `json:"notes"`
	Mandatory *bool   `json:"mandatory"`
}

type suppressedRequest struct {
	Suppressed bool `json:"suppressed"`
}

type addDeclensionRuleRequest struct {
	ID                *int64            `json:"id"`
	CombinationID     string            `json:"combinationId"`
	Name              string            `json:"name"`
	Pattern           string            `json:"pattern"`
	ApplyToAllClasses bool              `json:"applyToAllClasses"`
	ClassFilters      []classFilterJSON `json:"classFilters"`
	Transforms        []transformJSON   `json:"transforms"`
}

type updateDeclensionRuleRequest struct {
	CombinationID *string `json:"combinationId"`
	Name          *string `json:"name"`
	Pattern       *string `json:"pattern"`
}

type applyToAllRequest struct {
	ApplyToAllClasses bool `json:"applyToAllClasses"`
}

type classFilterRequest struct {
	ValueID int64 `json:"valueId"`
}

type evolveRequest struct {
	Find    string `json:"find"`
	Replace string `json:"replace"`
}

// typeTarget parses {lang} and {type}.
func typeTarget(r *http.Request) (uuid.UUID, int64, error) {
	return langAnd(r, "type")
}

// ruleTarget parses {lang}, {type} and {id}.
func ruleTarget(r *http.Request) (uuid.UUID, int64, int64, error) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		return uuid.Nil, 0, 0, err
	}
	id, err := pathInt64(r, "id")
	if err != nil {
		return uuid.Nil, 0, 0, err
	}
	return langID, typeID, id, nil
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

// ListTemplates handles GET .../parts-of-speech/{type}/templates.
func (h *GrammarHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ts, err := h.svc.ListTemplates(r.Context(), langID, typeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplates(ts))
}

// CreateTemplate handles POST .../parts-of-speech/{type}/templates.
func (h *GrammarHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dims := make([]grammar.DimensionInput, len(req.Dimensions))
	for i, d := range req.Dimensions {
		dims[i] = grammar.DimensionInput{Name: d.Name, Mandatory: d.Mandatory}
	}
	t, err := h.svc.CreateTemplate(r.Context(), grammar.CreateTemplateInput{
		LanguageID:    langID,
		TypeID:        typeID,
		Name:          req.Name,
		Notes:         req.Notes,
		Mandatory:     req.Mandatory,
		Singleton:     req.Singleton,
		CombinationID: domain.CombinationID(req.CombinationID),
		Dimensions:    dims,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplate(t))
}

// UpdateTemplate handles PATCH .../templates/{id}.
func (h *GrammarHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.UpdateTemplate(r.Context(), grammar.UpdateTemplateInput{
		LanguageID: langID,
		TypeID:     typeID,
		ID:         id,
		Name:       req.Name,
		Notes:      req.Notes,
		Mandatory:  req.Mandatory,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplate(t))
}

// DeleteTemplate handles DELETE .../templates/{id}.
func (h *GrammarHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteTemplate(r.Context(), langID, typeID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveTemplate handles POST .../templates/{id}/move.
func (h *GrammarHandler) MoveTemplate(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ts, err := h.svc.MoveTemplate(r.Context(), langID, typeID, id, req.Direction)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplates(ts))
}

// AddDimension handles POST .../templates/{id}/dimensions.
func (h *GrammarHandler) AddDimension(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req dimensionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.AddDimension(r.Context(), grammar.AddDimensionInput{
		LanguageID: langID,
		TypeID:     typeID,
		TemplateID: id,
		Name:       req.Name,
		Mandatory:  req.Mandatory,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDimension(d))
}

// DeleteDimension handles DELETE .../templates/{id}/dimensions/{dim}.
func (h *GrammarHandler) DeleteDimension(w http.ResponseWriter, r *http.Request) {
	langID, dimID, err := langAnd(r, "dim")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteDimension(r.Context(), langID, dimID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Combinations handles GET .../parts-of-speech/{type}/combinations.
func (h *GrammarHandler) Combinations(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := h.svc.Combinations(r.Context(), langID, typeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCombinations(views))
}

// SetSuppressed handles PUT .../combinations/{comb}/suppressed.
func (h *GrammarHandler) SetSuppressed(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	comb, err := pathCombination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req suppressedRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SetSuppressed(r.Context(), langID, typeID, comb, req.Suppressed); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

// ListRules handles GET .../parts-of-speech/{type}/rules.
func (h *GrammarHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rules, err := h.svc.ListRules(r.Context(), langID, typeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRules(rules))
}

// AddRule handles POST .../parts-of-speech/{type}/rules.
func (h *GrammarHandler) AddRule(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addDeclensionRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.AddRule(r.Context(), grammar.AddRuleInput{
		LanguageID:        langID,
		TypeID:            typeID,
		ID:                req.ID,
		CombinationID:     domain.CombinationID(req.CombinationID),
		Name:              req.Name,
		Pattern:           req.Pattern,
		ApplyToAllClasses: req.ApplyToAllClasses,
		ClassFilters:      fromClassFilters(req.ClassFilters),
		Transforms:        fromTransforms(req.Transforms),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeclensionRule(rule))
}

// UpdateRule handles PUT .../rules/{id}.
func (h *GrammarHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateDeclensionRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := grammar.UpdateRuleInput{
		LanguageID: langID,
		TypeID:     typeID,
		ID:         id,
		Name:       req.Name,
		Pattern:    req.Pattern,
	}
	if req.CombinationID != nil {
		comb := domain.CombinationID(*req.CombinationID)
		input.CombinationID = &comb
	}
	rule, err := h.svc.UpdateRule(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// DeleteRule handles DELETE .../rules/{id}.
func (h *GrammarHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteRule(r.Context(), langID, typeID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveRule handles POST .../rules/{id}/move.
func (h *GrammarHandler) MoveRule(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rules, err := h.svc.MoveRule(r.Context(), langID, typeID, id, req.Direction)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRules(rules))
}

// AddTransform handles POST .../rules/{id}/transforms.
func (h *GrammarHandler) AddTransform(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req transformJSON
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.AddTransform(r.Context(), langID, typeID, id, domain.Transform{Pattern: req.Pattern, Replacement: req.Replacement})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// UpdateTransform handles PUT .../rules/{id}/transforms/{index}.
func (h *GrammarHandler) UpdateTransform(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	i, err := pathIndex(r, "index")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req transformJSON
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.UpdateTransform(r.Context(), langID, typeID, id, i, domain.Transform{Pattern: req.Pattern, Replacement: req.Replacement})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// DeleteTransform handles DELETE .../rules/{id}/transforms/{index}.
func (h *GrammarHandler) DeleteTransform(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	i, err := pathIndex(r, "index")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.DeleteTransform(r.Context(), langID, typeID, id, i)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// MoveTransform handles POST .../rules/{id}/transforms/{index}/move.
func (h *GrammarHandler) MoveTransform(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	i, err := pathIndex(r, "index")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.MoveTransform(r.Context(), langID, typeID, id, i, req.Direction)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// SetApplyToAllClasses handles PUT .../rules/{id}/apply-to-all-classes.
func (h *GrammarHandler) SetApplyToAllClasses(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req applyToAllRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.SetApplyToAllClasses(r.Context(), langID, typeID, id, req.ApplyToAllClasses)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// SetClassFilter handles PUT .../rules/{id}/class-filters/{class}.
func (h *GrammarHandler) SetClassFilter(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	classID, err := pathInt64(r, "class")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req classFilterRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.SetClassFilter(r.Context(), langID, typeID, id, classID, req.ValueID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// RemoveClassFilter handles DELETE .../rules/{id}/class-filters/{class}.
func (h *GrammarHandler) RemoveClassFilter(w http.ResponseWriter, r *http.Request) {
	langID, typeID, id, err := ruleTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	classID, err := pathInt64(r, "class")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rule, err := h.svc.RemoveClassFilter(r.Context(), langID, typeID, id, classID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRule(rule))
}

// EvolveRules handles POST .../parts-of-speech/{type}/rules/evolve.
func (h *GrammarHandler) EvolveRules(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req evolveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.EvolveRules(r.Context(), grammar.EvolveInput{
		LanguageID: langID,
		TypeID:     typeID,
		Find:       req.Find,
		Replace:    req.Replace,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvolveResponse(res))
}

// DeprecatedRules handles GET .../parts-of-speech/{type}/rules/deprecated.
func (h *GrammarHandler) DeprecatedRules(w http.ResponseWriter, r *http.Request) {
	langID, typeID, err := typeTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rules, err := h.svc.DeprecatedRules(r.Context(), langID, typeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeclensionRules(rules))
}
