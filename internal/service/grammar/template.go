package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
)

// CombinationView is a paradigm cell together with its per-type flags.
type CombinationView struct {
	domain.Combination
	Suppressed bool `json:"suppressed"`
}

// CreateTemplate appends a template, with its dimensions, to a part of
// speech.
func (s *Service) CreateTemplate(ctx context.Context, input CreateTemplateInput) (domain.DeclensionTemplate, error) {
	if err := input.Validate(); err != nil {
		return domain.DeclensionTemplate{}, err
	}

	var tmpl domain.DeclensionTemplate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireType(txCtx, input.LanguageID, input.TypeID); err != nil {
			return err
		}
		existing, err := s.grammar.ListTemplates(txCtx, input.LanguageID, input.TypeID)
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}
		if input.CombinationID != "" {
			for _, c := range declension.Combinations(existing) {
				if c.ID == input.CombinationID {
					return fmt.Errorf("combination %s: %w", c.ID, domain.ErrAlreadyExists)
				}
			}
		}

		id, err := s.nextID(txCtx, input.LanguageID)
		if err != nil {
			return err
		}
		tmpl = domain.DeclensionTemplate{
			ID:            id,
			LanguageID:    input.LanguageID,
			TypeID:        input.TypeID,
			Name:          strings.TrimSpace(input.Name),
			Notes:         input.Notes,
			Mandatory:     input.Mandatory,
			Position:      len(existing) + 1,
			Singleton:     input.Singleton,
			CombinationID: input.CombinationID,
		}
		for i, d := range input.Dimensions {
			dimID, err := s.nextID(txCtx, input.LanguageID)
			if err != nil {
				return err
			}
			tmpl.Dimensions = append(tmpl.Dimensions, domain.DeclensionDimension{
				ID:         dimID,
				TemplateID: id,
				Name:       strings.TrimSpace(d.Name),
				Mandatory:  d.Mandatory,
				Position:   i + 1,
			})
		}

		if err := s.grammar.CreateTemplate(txCtx, tmpl); err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeclensionTemplate{}, err
	}

	s.log.InfoContext(ctx, "template created",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("type_id", input.TypeID),
		slog.Int64("template_id", tmpl.ID),
		slog.Int("dimensions", len(tmpl.Dimensions)),
	)
	return tmpl, nil
}

// ListTemplates returns the templates of a part of speech in order.
func (s *Service) ListTemplates(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionTemplate, error) {
	if err := s.requireType(ctx, langID, typeID); err != nil {
		return nil, err
	}
	out, err := s.grammar.ListTemplates(ctx, langID, typeID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return out, nil
}

// UpdateTemplate edits the name, notes or mandatory flag of a template.
func (s *Service) UpdateTemplate(ctx context.Context, input UpdateTemplateInput) (domain.DeclensionTemplate, error) {
	if err := input.Validate(); err != nil {
		return domain.DeclensionTemplate{}, err
	}

	var tmpl domain.DeclensionTemplate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if tmpl, err = s.findTemplate(txCtx, input.LanguageID, input.TypeID, input.ID); err != nil {
			return err
		}
		if input.Name != nil {
			tmpl.Name = strings.TrimSpace(*input.Name)
		}
		if input.Notes != nil {
			tmpl.Notes = *input.Notes
		}
		if input.Mandatory != nil {
			tmpl.Mandatory = *input.Mandatory
		}
		if err := s.grammar.UpdateTemplate(txCtx, tmpl); err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeclensionTemplate{}, err
	}
	return tmpl, nil
}

// DeleteTemplate removes a template. Rules and overrides keyed to the
// combinations it produced become deprecated; they are not deleted.
func (s *Service) DeleteTemplate(ctx context.Context, langID uuid.UUID, typeID, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.findTemplate(txCtx, langID, typeID, id); err != nil {
			return err
		}
		if err := s.grammar.DeleteTemplate(txCtx, langID, id); err != nil {
			return fmt.Errorf("delete template: %w", err)
		}
		rest, err := s.grammar.ListTemplates(txCtx, langID, typeID)
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}
		if err := s.grammar.SetTemplatePositions(txCtx, langID, templateIDs(rest)); err != nil {
			return fmt.Errorf("renumber templates: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "template deleted",
		slog.String("language_id", langID.String()),
		slog.Int64("type_id", typeID),
		slog.Int64("template_id", id),
	)
	return nil
}

// MoveTemplate swaps a template with its neighbour, which reorders the
// combination labels. Moving past either end is a no-op.
func (s *Service) MoveTemplate(ctx context.Context, langID uuid.UUID, typeID, id int64, dir domain.Direction) ([]domain.DeclensionTemplate, error) {
	if !dir.IsValid() {
		return nil, domain.NewValidationError("direction", "must be up or down")
	}

	var templates []domain.DeclensionTemplate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if templates, err = s.grammar.ListTemplates(txCtx, langID, typeID); err != nil {
			return fmt.Errorf("list templates: %w", err)
		}
		i := slices.IndexFunc(templates, func(t domain.DeclensionTemplate) bool { return t.ID == id })
		if i < 0 {
			return fmt.Errorf("declension_template %d: %w", id, domain.ErrNotFound)
		}

		var moved bool
		if dir == domain.DirectionUp {
			moved = domain.MoveUp(templates, i)
		} else {
			moved = domain.MoveDown(templates, i)
		}
		if !moved {
			return nil
		}
		domain.Renumber(templates, func(t *domain.DeclensionTemplate, pos int) { t.Position = pos })
		if err := s.grammar.SetTemplatePositions(txCtx, langID, templateIDs(templates)); err != nil {
			return fmt.Errorf("renumber templates: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// AddDimension appends a dimension to a dimensional template.
func (s *Service) AddDimension(ctx context.Context, input AddDimensionInput) (domain.DeclensionDimension, error) {
	if err := input.Validate(); err != nil {
		return domain.DeclensionDimension{}, err
	}

	var dim domain.DeclensionDimension
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tmpl, err := s.findTemplate(txCtx, input.LanguageID, input.TypeID, input.TemplateID)
		if err != nil {
			return err
		}
		if tmpl.Singleton {
			return domain.NewValidationError("template_id", "singleton templates have no dimensions")
		}

		id, err := s.nextID(txCtx, input.LanguageID)
		if err != nil {
			return err
		}
		last := 0
		for _, d := range tmpl.Dimensions {
			last = max(last, d.Position)
		}
		dim = domain.DeclensionDimension{
			ID:         id,
			TemplateID: tmpl.ID,
			Name:       strings.TrimSpace(input.Name),
			Mandatory:  input.Mandatory,
			Position:   last + 1,
		}
		if err := s.grammar.AddDimension(txCtx, input.LanguageID, dim); err != nil {
			return fmt.Errorf("add dimension: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeclensionDimension{}, err
	}
	return dim, nil
}

// DeleteDimension removes one dimension of a template.
func (s *Service) DeleteDimension(ctx context.Context, langID uuid.UUID, id int64) error {
	if err := s.grammar.DeleteDimension(ctx, langID, id); err != nil {
		return fmt.Errorf("delete dimension: %w", err)
	}
	return nil
}

// Combinations lists every paradigm cell of a part of speech with its
// suppression flag.
func (s *Service) Combinations(ctx context.Context, langID uuid.UUID, typeID int64) ([]CombinationView, error) {
	engine, err := s.BuildEngine(ctx, langID, typeID)
	if err != nil {
		return nil, err
	}
	combos := engine.Combinations()
	out := make([]CombinationView, len(combos))
	for i, c := range combos {
		out[i] = CombinationView{Combination: c, Suppressed: engine.Suppressed(c.ID)}
	}
	return out, nil
}

// SetSuppressed hides or shows a combination for a part of speech.
// Suppressed combinations are left out of paradigms and requirement checks.
func (s *Service) SetSuppressed(ctx context.Context, langID uuid.UUID, typeID int64, id domain.CombinationID, suppressed bool) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireType(txCtx, langID, typeID); err != nil {
			return err
		}
		templates, err := s.grammar.ListTemplates(txCtx, langID, typeID)
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}
		if !slices.ContainsFunc(declension.Combinations(templates), func(c domain.Combination) bool { return c.ID == id }) {
			return fmt.Errorf("combination %s: %w", id, domain.ErrNotFound)
		}
		if err := s.grammar.UpsertSetting(txCtx, langID, domain.CombinationSetting{
			TypeID:        typeID,
			CombinationID: id,
			Suppressed:    suppressed,
		}); err != nil {
			return fmt.Errorf("store setting: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "combination setting changed",
		slog.String("language_id", langID.String()),
		slog.Int64("type_id", typeID),
		slog.String("combination_id", id.String()),
		slog.Bool("suppressed", suppressed),
	)
	return nil
}

func (s *Service) findTemplate(ctx context.Context, langID uuid.UUID, typeID, id int64) (domain.DeclensionTemplate, error) {
	templates, err := s.grammar.ListTemplates(ctx, langID, typeID)
	if err != nil {
		return domain.DeclensionTemplate{}, fmt.Errorf("list templates: %w", err)
	}
	i := slices.IndexFunc(templates, func(t domain.DeclensionTemplate) bool { return t.ID == id })
	if i < 0 {
		return domain.DeclensionTemplate{}, fmt.Errorf("declension_template %d: %w", id, domain.ErrNotFound)
	}
	return templates[i], nil
}

func templateIDs(templates []domain.DeclensionTemplate) []int64 {
	ids := make([]int64, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	return ids
}
