package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// CreateClass adds a word class and its enumerated values.
func (s *Service) CreateClass(ctx context.Context, input CreateClassInput) (domain.WordClass, error) {
	if err := input.Validate(); err != nil {
		return domain.WordClass{}, err
	}

	var class domain.WordClass
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		types, err := s.lexicon.ListPartsOfSpeech(txCtx, input.LanguageID)
		if err != nil {
			return fmt.Errorf("list parts of speech: %w", err)
		}
		var errs domain.FieldErrors
		for i, typeID := range input.TypeIDs {
			if !slices.ContainsFunc(types, func(p domain.PartOfSpeech) bool { return p.ID == typeID }) {
				errs.Add(fmt.Sprintf("type_ids[%d]", i), fmt.Sprintf("unknown part of speech %d", typeID))
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}

		id, err := s.nextID(txCtx, input.LanguageID)
		if err != nil {
			return err
		}
		class = domain.WordClass{
			ID:         id,
			LanguageID: input.LanguageID,
			Name:       strings.TrimSpace(input.Name),
			FreeText:   input.FreeText,
			TypeIDs:    slices.Clone(input.TypeIDs),
		}
		for _, v := range input.Values {
			valueID, err := s.nextID(txCtx, input.LanguageID)
			if err != nil {
				return err
			}
			class.Values = append(class.Values, domain.WordClassValue{ID: valueID, ClassID: id, Value: strings.TrimSpace(v)})
		}

		if err := s.lexicon.CreateClass(txCtx, class); err != nil {
			return fmt.Errorf("create class: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.WordClass{}, err
	}

	s.log.InfoContext(ctx, "word class created",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("class_id", class.ID),
		slog.Int("values", len(class.Values)),
	)
	return class, nil
}

// ListClasses returns every word class of a language with its values.
func (s *Service) ListClasses(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error) {
	classes, err := s.lexicon.ListClasses(ctx, langID)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// AddClassValue appends an enumerated value to a class.
func (s *Service) AddClassValue(ctx context.Context, langID uuid.UUID, classID int64, value string) (domain.WordClassValue, error) {
	if errs := validateName(nil, "value", value); len(errs) > 0 {
		return domain.WordClassValue{}, &domain.ValidationError{Errors: errs}
	}
	value = strings.TrimSpace(value)

	var v domain.WordClassValue
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		class, err := s.findClass(txCtx, langID, classID)
		if err != nil {
			return err
		}
		if class.FreeText {
			return domain.NewValidationError("class_id", "free text classes have no values")
		}
		if slices.ContainsFunc(class.Values, func(cv domain.WordClassValue) bool { return cv.Value == value }) {
			return fmt.Errorf("value %q: %w", value, domain.ErrAlreadyExists)
		}

		id, err := s.nextID(txCtx, langID)
		if err != nil {
			return err
		}
		v = domain.WordClassValue{ID: id, ClassID: classID, Value: value}
		if err := s.lexicon.AddClassValue(txCtx, langID, v); err != nil {
			return fmt.Errorf("add class value: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.WordClassValue{}, err
	}
	return v, nil
}

// DeleteClass removes a class; rule filters and word assignments on it go
// with it.
func (s *Service) DeleteClass(ctx context.Context, langID uuid.UUID, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lexicon.DeleteClass(txCtx, langID, id); err != nil {
			return fmt.Errorf("delete class: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "word class deleted",
		slog.String("language_id", langID.String()),
		slog.Int64("class_id", id),
	)
	return nil
}

// DeleteClassValue removes one enumerated value of a class. Rule filters
// that required the value are dropped with it.
func (s *Service) DeleteClassValue(ctx context.Context, langID uuid.UUID, valueID int64) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lexicon.DeleteClassValue(txCtx, langID, valueID); err != nil {
			return fmt.Errorf("delete class value: %w", err)
		}
		return nil
	})
}

func (s *Service) findClass(ctx context.Context, langID uuid.UUID, classID int64) (domain.WordClass, error) {
	classes, err := s.lexicon.ListClasses(ctx, langID)
	if err != nil {
		return domain.WordClass{}, fmt.Errorf("list classes: %w", err)
	}
	i := slices.IndexFunc(classes, func(c domain.WordClass) bool { return c.ID == classID })
	if i < 0 {
		return domain.WordClass{}, fmt.Errorf("word_class %d: %w", classID, domain.ErrNotFound)
	}
	return classes[i], nil
}

// checkAssignment verifies that valueID is a value of classID and that the
// class applies to words of typeID.
func checkAssignment(classes []domain.WordClass, typeID *int64, classID, valueID int64) error {
	field := fmt.Sprintf("classes[%d]", classID)
	i := slices.IndexFunc(classes, func(c domain.WordClass) bool { return c.ID == classID })
	if i < 0 {
		return domain.NewValidationError(field, "unknown class")
	}
	c := classes[i]
	switch {
	case c.FreeText:
		return domain.NewValidationError(field, "free text classes cannot be assigned a value")
	case !c.HasValue(valueID):
		return domain.NewValidationError(field, fmt.Sprintf("value %d does not belong to class %q", valueID, c.Name))
	case len(c.TypeIDs) > 0 && (typeID == nil || !c.AppliesToType(*typeID)):
		return domain.NewValidationError(field, fmt.Sprintf("class %q does not apply to this part of speech", c.Name))
	}
	return nil
}
