package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/service/lexicon"
)

type lexiconService interface {
	ListPartsOfSpeech(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error)
	GetPartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error)
	CreatePartOfSpeech(ctx context.Context, input lexicon.CreatePartOfSpeechInput) (domain.PartOfSpeech, error)
	UpdatePartOfSpeech(ctx context.Context, input lexicon.UpdatePartOfSpeechInput) (domain.PartOfSpeech, error)
	DeletePartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (lexicon.DeleteTypeResult, error)

	ListClasses(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error)
	CreateClass(ctx context.Context, input lexicon.CreateClassInput) (domain.WordClass, error)
	AddClassValue(ctx context.Context, langID uuid.UUID, classID int64, value string) (domain.WordClassValue, error)
	DeleteClass(ctx context.Context, langID uuid.UUID, id int64) error
	DeleteClassValue(ctx context.Context, langID uuid.UUID, valueID int64) error

	ListWords(ctx context.Context, input lexicon.ListWordsInput) ([]domain.Word, error)
	GetWord(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error)
	CreateWord(ctx context.Context, input lexicon.CreateWordInput) (domain.Word, error)
	UpdateWord(ctx context.Context, input lexicon.UpdateWordInput) (domain.Word, error)
	DeleteWord(ctx context.Context, langID uuid.UUID, id int64) error
	SetWordClass(ctx context.Context, langID uuid.UUID, wordID, classID, valueID int64) (domain.Word, error)
	RemoveWordClass(ctx context.Context, langID uuid.UUID, wordID, classID int64) error
}

// LexiconHandler serves parts of speech, word classes and words.
type LexiconHandler struct {
	svc lexiconService
	log *slog.Logger
}

// NewLexiconHandler creates a LexiconHandler.
func NewLexiconHandler(svc lexiconService, log *slog.Logger) *LexiconHandler {
	return &LexiconHandler{svc: svc, log: log.With("handler", "lexicon")}
}

type partOfSpeechRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type updatePartOfSpeechRequest struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
}

type createClassRequest struct {
	Name     string   `json:"name"`
	FreeText bool     `json:"freeText"`
	TypeIDs  []int64  `json:"typeIds"`
	Values   []string `json:"values"`
}

type classValueRequest struct {
	Value string `json:"value"`
}

type createWordRequest struct {
	Value   string          `json:"value"`
	TypeID  *int64          `json:"typeId"`
	Classes map[int64]int64 `json:"classes"`
}

type updateWordRequest struct {
	Value     *string `json:"value"`
	TypeID    *int64  `json:"typeId"`
	ClearType bool    `json:"clearType"`
}

type setWordClassRequest struct {
	ValueID int64 `json:"valueId"`
}

// ---------------------------------------------------------------------------
// Parts of speech
// ---------------------------------------------------------------------------

// ListPartsOfSpeech handles GET /languages/{lang}/parts-of-speech.
func (h *LexiconHandler) ListPartsOfSpeech(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	types, err := h.svc.ListPartsOfSpeech(r.Context(), langID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]partOfSpeechResponse, len(types))
	for i, p := range types {
		out[i] = toPartOfSpeech(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPartOfSpeech handles GET /languages/{lang}/parts-of-speech/{type}.
func (h *LexiconHandler) GetPartOfSpeech(w http.ResponseWriter, r *http.Request) {
	langID, id, err := langAnd(r, "type")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetPartOfSpeech(r.Context(), langID, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPartOfSpeech(p))
}

// CreatePartOfSpeech handles POST /languages/{lang}/parts-of-speech.
func (h *LexiconHandler) CreatePartOfSpeech(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req partOfSpeechRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreatePartOfSpeech(r.Context(), lexicon.CreatePartOfSpeechInput{
		LanguageID: langID,
		Name:       req.Name,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPartOfSpeech(p))
}

// UpdatePartOfSpeech handles PATCH /languages/{lang}/parts-of-speech/{type}.
func (h *LexiconHandler) UpdatePartOfSpeech(w http.ResponseWriter, r *http.Request) {
	langID, id, err := langAnd(r, "type")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updatePartOfSpeechRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdatePartOfSpeech(r.Context(), lexicon.UpdatePartOfSpeechInput{
		LanguageID: langID,
		ID:         id,
		Name:       req.Name,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPartOfSpeech(p))
}

// DeletePartOfSpeech handles DELETE /languages/{lang}/parts-of-speech/{type}
// and reports how many words and overrides the cascade touched.
func (h *LexiconHandler) DeletePartOfSpeech(w http.ResponseWriter, r *http.Request) {
	langID, id, err := langAnd(r, "type")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.DeletePartOfSpeech(r.Context(), langID, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeleteTypeResponse(res))
}

// ---------------------------------------------------------------------------
// Word classes
// ---------------------------------------------------------------------------

// ListClasses handles GET /languages/{lang}/classes.
func (h *LexiconHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	classes, err := h.svc.ListClasses(r.Context(), langID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]classResponse, len(classes))
	for i, c := range classes {
		out[i] = toClass(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateClass handles POST /languages/{lang}/classes.
func (h *LexiconHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createClassRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.CreateClass(r.Context(), lexicon.CreateClassInput{
		LanguageID: langID,
		Name:       req.Name,
		FreeText:   req.FreeText,
		TypeIDs:    req.TypeIDs,
		Values:     req.Values,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClass(c))
}

// AddClassValue handles POST /languages/{lang}/classes/{class}/values.
func (h *LexiconHandler) AddClassValue(w http.ResponseWriter, r *http.Request) {
	langID, classID, err := langAnd(r, "class")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req classValueRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.svc.AddClassValue(r.Context(), langID, classID, req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, classValueResponse{ID: v.ID, Value: v.Value})
}

// DeleteClass handles DELETE /languages/{lang}/classes/{class}.
func (h *LexiconHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	langID, classID, err := langAnd(r, "class")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteClass(r.Context(), langID, classID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteClassValue handles DELETE /languages/{lang}/classes/{class}/values/{value}.
func (h *LexiconHandler) DeleteClassValue(w http.ResponseWriter, r *http.Request) {
	langID, valueID, err := langAnd(r, "value")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteClassValue(r.Context(), langID, valueID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

// ListWords handles GET /languages/{lang}/words?type=&prefix=&limit=&offset=.
func (h *LexiconHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := lexicon.ListWordsInput{
		LanguageID: langID,
		Prefix:     r.URL.Query().Get("prefix"),
	}
	if v := r.URL.Query().Get("type"); v != "" {
		typeID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("type", "must be an integer"))
			return
		}
		input.TypeID = &typeID
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.ListWords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]wordResponse, len(words))
	for i, word := range words {
		out[i] = toWord(word)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetWord handles GET /languages/{lang}/words/{id}.
func (h *LexiconHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	langID, id, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.GetWord(r.Context(), langID, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWord(word))
}

// CreateWord handles POST /languages/{lang}/words.
func (h *LexiconHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	langID, err := pathLanguage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.CreateWord(r.Context(), lexicon.CreateWordInput{
		LanguageID: langID,
		Value:      req.Value,
		TypeID:     req.TypeID,
		Classes:    req.Classes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWord(word))
}

// UpdateWord handles PATCH /languages/{lang}/words/{id}.
func (h *LexiconHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	langID, id, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.UpdateWord(r.Context(), lexicon.UpdateWordInput{
		LanguageID: langID,
		ID:         id,
		Value:      req.Value,
		TypeID:     req.TypeID,
		ClearType:  req.ClearType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWord(word))
}

// DeleteWord handles DELETE /languages/{lang}/words/{id}.
func (h *LexiconHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	langID, id, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteWord(r.Context(), langID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetWordClass handles PUT /languages/{lang}/words/{id}/classes/{class}.
func (h *LexiconHandler) SetWordClass(w http.ResponseWriter, r *http.Request) {
	langID, wordID, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	classID, err := pathInt64(r, "class")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setWordClassRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.SetWordClass(r.Context(), langID, wordID, classID, req.ValueID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWord(word))
}

// RemoveWordClass handles DELETE /languages/{lang}/words/{id}/classes/{class}.
func (h *LexiconHandler) RemoveWordClass(w http.ResponseWriter, r *http.Request) {
	langID, wordID, err := langAnd(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	classID, err := pathInt64(r, "class")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.RemoveWordClass(r.Context(), langID, wordID, classID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
