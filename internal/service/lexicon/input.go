package lexicon

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// CreatePartOfSpeechInput holds the parameters for creating a part of speech.
type CreatePartOfSpeechInput struct {
	LanguageID uuid.UUID
	Name       string
	Notes      string
}

// Validate checks all fields and collects all errors.
func (i CreatePartOfSpeechInput) Validate() error {
	var errs []domain.FieldError
	errs = requireLanguage(errs, i.LanguageID)
	errs = validateName(errs, "name", i.Name)
	if len(i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNotesLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePartOfSpeechInput holds the parameters for editing a part of
// speech. Nil fields are left unchanged.
type UpdatePartOfSpeechInput struct {
	LanguageID uuid.UUID
	ID         int64
	Name       *string
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePartOfSpeechInput) Validate() error {
	var errs []domain.FieldError
	errs = requireLanguage(errs, i.LanguageID)
	if i.Name == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, "name", *i.Name)
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNotesLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateClassInput holds the parameters for creating a word class.
type CreateClassInput struct {
	LanguageID uuid.UUID
	Name       string
	FreeText   bool
	TypeIDs    []int64
	Values     []string
}

// Validate checks all fields and collects all errors.
func (i CreateClassInput) Validate() error {
	var errs []domain.FieldError
	errs = requireLanguage(errs, i.LanguageID)
	errs = validateName(errs, "name", i.Name)
	if i.FreeText && len(i.Values) > 0 {
		errs = append(errs, domain.FieldError{Field: "values", Message: "free text classes have no values"})
	}
	seen := make(map[string]bool, len(i.Values))
	for idx, v := range i.Values {
		field := fmt.Sprintf("values[%d]", idx)
		v = strings.TrimSpace(v)
		errs = validateName(errs, field, v)
		if seen[v] {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate"})
		}
		seen[v] = true
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateWordInput holds the parameters for adding a word.
type CreateWordInput struct {
	LanguageID uuid.UUID
	Value      string
	TypeID     *int64
	// Classes maps class id to value id.
	Classes map[int64]int64
}

// Validate checks all fields and collects all errors.
func (i CreateWordInput) Validate() error {
	var errs []domain.FieldError
	errs = requireLanguage(errs, i.LanguageID)
	errs = validateWord(errs, i.Value)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWordInput holds the parameters for editing a word. Nil fields are
// left unchanged; ClearType detaches the word from its part of speech.
type UpdateWordInput struct {
	LanguageID uuid.UUID
	ID         int64
	Value      *string
	TypeID     *int64
	ClearType  bool
}

// Validate checks all fields and collects all errors.
func (i UpdateWordInput) Validate() error {
	var errs []domain.FieldError
	errs = requireLanguage(errs, i.LanguageID)
	if i.Value == nil && i.TypeID == nil && !i.ClearType {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.TypeID != nil && i.ClearType {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "cannot set and clear the type at once"})
	}
	if i.Value != nil {
		errs = validateWord(errs, *i.Value)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListWordsInput narrows a word listing.
type ListWordsInput struct {
	LanguageID uuid.UUID
	TypeID     *int64
	Prefix     string
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListWordsInput) Validate() error {
	var errs []domain.FieldError
	errs = requireLanguage(errs, i.LanguageID)
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requireLanguage(errs []domain.FieldError, id uuid.UUID) []domain.FieldError {
	if id == uuid.Nil {
		return append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	return errs
}

func validateName(errs []domain.FieldError, field, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	return errs
}

func validateWord(errs []domain.FieldError, value string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: "value", Message: "required"})
	}
	if len(value) > MaxWordLength {
		return append(errs, domain.FieldError{Field: "value", Message: fmt.Sprintf("max %d characters", MaxWordLength)})
	}
	return errs
}
