package grammar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// DimensionInput describes one dimension of a new template.
type DimensionInput struct {
	Name      string
	Mandatory bool
}

// CreateTemplateInput holds the parameters for adding a template to a part
// of speech.
type CreateTemplateInput struct {
	LanguageID uuid.UUID
	TypeID     int64
	Name       string
	Notes      string
	Mandatory  bool
	// Singleton templates stand for one form and take no dimensions.
	Singleton bool
	// CombinationID optionally keys a singleton with a fixed id.
	CombinationID domain.CombinationID
	Dimensions    []DimensionInput
}

// Validate checks all fields and collects all errors.
func (i CreateTemplateInput) Validate() error {
	var errs []domain.FieldError
	errs = requireTypeRef(errs, i.LanguageID, i.TypeID)
	errs = validateName(errs, "name", i.Name)
	if len(i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNotesLength)})
	}
	if i.Singleton && len(i.Dimensions) > 0 {
		errs = append(errs, domain.FieldError{Field: "dimensions", Message: "singleton templates have no dimensions"})
	}
	if !i.Singleton && i.CombinationID != "" {
		errs = append(errs, domain.FieldError{Field: "combination_id", Message: "only singleton templates take a combination id"})
	}
	for idx, d := range i.Dimensions {
		errs = validateName(errs, fmt.Sprintf("dimensions[%d].name", idx), d.Name)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTemplateInput holds the parameters for editing a template. Nil
// fields are left unchanged.
type UpdateTemplateInput struct {
	LanguageID uuid.UUID
	TypeID     int64
	ID         int64
	Name       *string
	Notes      *string
	Mandatory  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTemplateInput) Validate() error {
	var errs []domain.FieldError
	errs = requireTypeRef(errs, i.LanguageID, i.TypeID)
	if i.Name == nil && i.Notes == nil && i.Mandatory == nil {
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

// AddDimensionInput holds the parameters for appending a dimension.
type AddDimensionInput struct {
	LanguageID uuid.UUID
	TypeID     int64
	TemplateID int64
	Name       string
	Mandatory  bool
}

// Validate checks all fields and collects all errors.
func (i AddDimensionInput) Validate() error {
	var errs []domain.FieldError
	errs = requireTypeRef(errs, i.LanguageID, i.TypeID)
	errs = validateName(errs, "name", i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddRuleInput holds the parameters for adding a declension rule.
type AddRuleInput struct {
	LanguageID uuid.UUID
	TypeID     int64
	// ID is allocated from the language when nil.
	ID                *int64
	CombinationID     domain.CombinationID
	Name              string
	Pattern           string
	ApplyToAllClasses bool
	ClassFilters      []domain.ClassFilter
	Transforms        []domain.Transform
}

// Validate checks all fields and collects all errors.
func (i AddRuleInput) Validate() error {
	var errs []domain.FieldError
	errs = requireTypeRef(errs, i.LanguageID, i.TypeID)
	if i.ID != nil && *i.ID < 1 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be >= 1"})
	}
	if i.CombinationID == "" {
		errs = append(errs, domain.FieldError{Field: "combination_id", Message: "required"})
	}
	if len(i.Name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	if i.Pattern == "" {
		errs = append(errs, domain.FieldError{Field: "pattern", Message: "required"})
	}
	if i.ApplyToAllClasses && len(i.ClassFilters) > 0 {
		errs = append(errs, domain.FieldError{Field: "class_filters", Message: "cannot combine with apply_to_all_classes"})
	}
	if len(i.Transforms) > MaxTransforms {
		errs = append(errs, domain.FieldError{Field: "transforms", Message: fmt.Sprintf("max %d transforms", MaxTransforms)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRuleInput holds the parameters for editing the scalar fields of a
// rule. Nil fields are left unchanged. Transforms and class filters have
// their own operations.
type UpdateRuleInput struct {
	LanguageID    uuid.UUID
	TypeID        int64
	ID            int64
	CombinationID *domain.CombinationID
	Name          *string
	Pattern       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateRuleInput) Validate() error {
	var errs []domain.FieldError
	errs = requireTypeRef(errs, i.LanguageID, i.TypeID)
	if i.CombinationID == nil && i.Name == nil && i.Pattern == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.CombinationID != nil && *i.CombinationID == "" {
		errs = append(errs, domain.FieldError{Field: "combination_id", Message: "required"})
	}
	if i.Name != nil && len(*i.Name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	if i.Pattern != nil && *i.Pattern == "" {
		errs = append(errs, domain.FieldError{Field: "pattern", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EvolveInput describes a bulk literal substitution over the transforms of
// one part of speech.
type EvolveInput struct {
	LanguageID uuid.UUID
	TypeID     int64
	Find       string
	Replace    string
}

// Validate checks all fields and collects all errors.
func (i EvolveInput) Validate() error {
	var errs []domain.FieldError
	errs = requireTypeRef(errs, i.LanguageID, i.TypeID)
	if i.Find == "" {
		errs = append(errs, domain.FieldError{Field: "find", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetOverrideInput holds a hand-written form for one word and combination.
type SetOverrideInput struct {
	LanguageID    uuid.UUID
	WordID        int64
	CombinationID domain.CombinationID
	Value         string
	Notes         string
}

// Validate checks all fields and collects all errors.
func (i SetOverrideInput) Validate() error {
	var errs []domain.FieldError
	if i.LanguageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	if i.WordID < 1 {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "must be >= 1"})
	}
	if i.CombinationID == "" {
		errs = append(errs, domain.FieldError{Field: "combination_id", Message: "required"})
	}
	if len(i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNotesLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requireTypeRef(errs []domain.FieldError, langID uuid.UUID, typeID int64) []domain.FieldError {
	if langID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	if typeID < 1 {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "must be >= 1"})
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
