package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// maxBodyBytes caps JSON request bodies. Rule payloads are small; a report
// is never posted.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain sentinels onto HTTP statuses. Anything unmapped is
// logged and reported as 500 without leaking the cause.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a single JSON object from the body. Unknown fields are
// rejected so typos in rule payloads do not pass silently.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Path parameters
// ---------------------------------------------------------------------------

func pathLanguage(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("lang"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("lang", "must be a UUID")
	}
	return id, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func pathIndex(r *http.Request, name string) (int, error) {
	i, err := strconv.Atoi(r.PathValue(name))
	if err != nil || i < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return i, nil
}

// pathKind accepts the guide kind in any case: "pronunciation" and
// "PRONUNCIATION" name the same guide.
func pathKind(r *http.Request) (domain.GuideKind, error) {
	kind := domain.GuideKind(strings.ToUpper(r.PathValue("kind")))
	if !kind.IsValid() {
		return "", domain.NewValidationError("kind", "must be pronunciation or romanization")
	}
	return kind, nil
}

// pathCombination accepts both the canonical ",11,12," form and the
// bracket-free "11,12" form. Other values are taken as opaque keys.
func pathCombination(r *http.Request) (domain.CombinationID, error) {
	raw := r.PathValue("comb")
	if raw == "" {
		return "", domain.NewValidationError("comb", "required")
	}
	return domain.ParseCombinationID(raw), nil
}

// langAnd parses the language and one integer path parameter, the most
// common shape of a nested route.
func langAnd(r *http.Request, name string) (uuid.UUID, int64, error) {
	langID, err := pathLanguage(r)
	if err != nil {
		return uuid.Nil, 0, err
	}
	id, err := pathInt64(r, name)
	if err != nil {
		return uuid.Nil, 0, err
	}
	return langID, id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, fmt.Sprintf("must be a non-negative integer, got %q", v))
	}
	return n, nil
}
