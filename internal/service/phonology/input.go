package phonology

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// MaxTextLength bounds the text accepted by Pronounce.
const MaxTextLength = 10_000

// AddRuleInput holds the parameters for adding a rule to a guide.
type AddRuleInput struct {
	LanguageID uuid.UUID
	Kind       domain.GuideKind
	// ID is allocated from the language when nil.
	ID *int64
	// Position is the 1-based slot to insert at; nil appends.
	Position *int
	Pattern  string
	Phoneme  string
}

// Validate checks all fields and collects all errors. Regex syntax is
// checked later, once the language settings are known.
func (i AddRuleInput) Validate() error {
	var errs []domain.FieldError

	errs = validateGuideRef(errs, i.LanguageID, i.Kind)
	if i.ID != nil && *i.ID < 1 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be >= 1"})
	}
	if i.Position != nil && *i.Position < 1 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be >= 1"})
	}
	if i.Pattern == "" {
		errs = append(errs, domain.FieldError{Field: "pattern", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRuleInput holds the parameters for editing a rule. Nil fields are
// left unchanged.
type UpdateRuleInput struct {
	LanguageID uuid.UUID
	Kind       domain.GuideKind
	ID         int64
	Pattern    *string
	Phoneme    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateRuleInput) Validate() error {
	var errs []domain.FieldError

	errs = validateGuideRef(errs, i.LanguageID, i.Kind)
	if i.ID < 1 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be >= 1"})
	}
	if i.Pattern == nil && i.Phoneme == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Pattern != nil && *i.Pattern == "" {
		errs = append(errs, domain.FieldError{Field: "pattern", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PronounceInput holds the text to render with one guide.
type PronounceInput struct {
	LanguageID uuid.UUID
	Kind       domain.GuideKind
	Text       string
}

// Validate checks all fields and collects all errors.
func (i PronounceInput) Validate() error {
	var errs []domain.FieldError

	errs = validateGuideRef(errs, i.LanguageID, i.Kind)
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(i.Text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateGuideRef(errs []domain.FieldError, langID uuid.UUID, kind domain.GuideKind) []domain.FieldError {
	if langID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	if !kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be PRONUNCIATION or ROMANIZATION"})
	}
	return errs
}
