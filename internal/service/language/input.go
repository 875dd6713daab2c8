package language

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// CreateLanguageInput holds the parameters for creating a language.
type CreateLanguageInput struct {
	Name         string
	IgnoreCase   bool
	DisableRegex bool
}

// Validate checks all fields and collects all errors.
func (i CreateLanguageInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLanguageInput holds the parameters for updating a language.
// Nil fields are left unchanged.
type UpdateLanguageInput struct {
	ID           uuid.UUID
	Name         *string
	IgnoreCase   *bool
	DisableRegex *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateLanguageInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.IgnoreCase == nil && i.DisableRegex == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGuideInput holds the parameters for changing the options of one
// guide. Nil fields are left unchanged; a non-nil Syllables replaces the
// whole list.
type UpdateGuideInput struct {
	LanguageID          uuid.UUID
	Kind                domain.GuideKind
	Recursive           *bool
	SyllableComposition *bool
	Enabled             *bool
	Syllables           *[]string
}

// Validate checks all fields and collects all errors.
func (i UpdateGuideInput) Validate() error {
	var errs []domain.FieldError

	if i.LanguageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be PRONUNCIATION or ROMANIZATION"})
	}
	if i.Kind == domain.GuideKindPronunciation && i.Enabled != nil && !*i.Enabled {
		errs = append(errs, domain.FieldError{Field: "enabled", Message: "pronunciation cannot be disabled"})
	}
	if i.Syllables != nil {
		if len(*i.Syllables) > MaxSyllables {
			errs = append(errs, domain.FieldError{Field: "syllables", Message: fmt.Sprintf("max %d syllables", MaxSyllables)})
		}
		seen := make(map[string]bool, len(*i.Syllables))
		for idx, s := range *i.Syllables {
			field := fmt.Sprintf("syllables[%d]", idx)
			s = strings.TrimSpace(s)
			switch {
			case s == "":
				errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			case seen[s]:
				errs = append(errs, domain.FieldError{Field: field, Message: "duplicate"})
			}
			seen[s] = true
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	return errs
}
