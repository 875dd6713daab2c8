package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/service/language"
)

type languageService interface {
	CreateLanguage(ctx context.Context, input language.CreateLanguageInput) (*domain.Language, error)
	GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListLanguages(ctx context.Context) ([]domain.Language, error)
	UpdateLanguage(ctx context.Context, input language.UpdateLanguageInput) (*domain.Language, error)
	DeleteLanguage(ctx context.Context, id uuid.UUID) error
	GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)
	UpdateGuide(ctx context.Context, input language.UpdateGuideInput) (domain.PhonologyGuide, error)
}

// LanguageHandler serves languages and their phonology guide options.
type LanguageHandler struct {
	svc languageService
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(svc languageService, log *slog.Logger) *LanguageHandler {
	return &LanguageHandler{svc: svc, log: log.With("handler", "language")}
}

type createLanguageRequest struct {
	Name         string `json:"name"`
	IgnoreCase   bool   `json:"ignoreCase"`
	DisableRegex bool   `json:"disableRegex"`
}

type updateLanguageRequest struct {
	Name         *string `json:"name"`
	IgnoreCase   *bool   `json:"ignoreCase"`
	DisableRegex *bool   `json:"disableRegex"`
}

type updateGuideRequest struct {
	Recursive           *bool     `json:"recursive"`
	SyllableComposition *bool     `json:"syllableComposition"`
	Enabled             *bool     `json:"enabled"`
	Syllables           *[]string `json:"syllables"`
}

// Create handles POST /languages.
func (h *LanguageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang, err := h.svc.CreateLanguage(r.Context(), language.CreateLanguageInput{
		Name:         req.Name,
		IgnoreCase:   req.IgnoreCase,
		DisableRegex: req.DisableRegex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLanguageResponse(lang))
}

// List handles GET /languages.
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	langs, err := h.svc.ListLanguages(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]languageResponse, len(langs))
	for i := range langs {
		out[i] = toLanguageResponse(&langs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /languages/{lang}.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang, err := h.svc.GetLanguage(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguageResponse(lang))
}

// Update handles PATCH /languages/{lang}. Absent fields are left unchanged.
func (h *LanguageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateLanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang, err := h.svc.UpdateLanguage(r.Context(), language.UpdateLanguageInput{
		ID:           id,
		Name:         req.Name,
		IgnoreCase:   req.IgnoreCase,
		DisableRegex: req.DisableRegex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguageResponse(lang))
}

// Delete handles DELETE /languages/{lang}.
func (h *LanguageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteLanguage(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetGuide handles GET /languages/{lang}/guides/{kind}.
func (h *LanguageHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	id, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	guide, err := h.svc.GetGuide(r.Context(), id, kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGuideResponse(guide))
}

// UpdateGuide handles PUT /languages/{lang}/guides/{kind}.
func (h *LanguageHandler) UpdateGuide(w http.ResponseWriter, r *http.Request) {
	id, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateGuideRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	guide, err := h.svc.UpdateGuide(r.Context(), language.UpdateGuideInput{
		LanguageID:          id,
		Kind:                kind,
		Recursive:           req.Recursive,
		SyllableComposition: req.SyllableComposition,
		Enabled:             req.Enabled,
		Syllables:           req.Syllables,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGuideResponse(guide))
}
