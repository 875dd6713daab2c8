// Package declension generates inflected word forms for one part of speech.
//
// An Engine is built from a snapshot of the part of speech's templates,
// rules and combination settings. It never mutates its input and is safe
// for concurrent use.
package declension

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pattern"
)

// Paradigm is everything the engine needs to know about one part of speech.
type Paradigm struct {
	TypeID    int64
	Templates []domain.DeclensionTemplate
	Rules     []domain.DeclensionRule
	Settings  []domain.CombinationSetting
	// TypeHasClasses is false when no word class applies to the type, in
	// which case class filters are ignored.
	TypeHasClasses bool
}

// Config tunes rule compilation.
type Config struct {
	// Timeout bounds a single regex match.
	Timeout time.Duration
}

// Cell is one paradigm entry of a word.
type Cell struct {
	Combination domain.Combination `json:"combination"`
	Form        domain.Form        `json:"form"`
}

type compiledRule struct {
	rule       domain.DeclensionRule
	match      *pattern.Regex
	transforms []*pattern.Replacer
}

// Engine declines words of a single part of speech.
type Engine struct {
	typeID         int64
	typeHasClasses bool
	combinations   []domain.Combination
	known          map[domain.CombinationID]bool
	suppressed     map[domain.CombinationID]bool
	rules          map[domain.CombinationID][]compiledRule
	ordered        []domain.DeclensionRule
}

// New validates the paradigm and compiles every rule and transform.
func New(p Paradigm, cfg Config) (*Engine, error) {
	e := &Engine{
		typeID:         p.TypeID,
		typeHasClasses: p.TypeHasClasses,
		known:          make(map[domain.CombinationID]bool),
		suppressed:     make(map[domain.CombinationID]bool),
		rules:          make(map[domain.CombinationID][]compiledRule),
	}

	e.combinations = Combinations(p.Templates)
	for _, c := range e.combinations {
		e.known[c.ID] = true
	}
	for _, s := range p.Settings {
		if s.TypeID == p.TypeID && s.Suppressed {
			e.suppressed[s.CombinationID] = true
		}
	}

	e.ordered = make([]domain.DeclensionRule, len(p.Rules))
	copy(e.ordered, p.Rules)
	domain.SortByPosition(e.ordered, func(r domain.DeclensionRule) int { return r.Position })

	var errs domain.FieldErrors
	opts := pattern.Options{Timeout: cfg.Timeout}
	for i, r := range e.ordered {
		field := fmt.Sprintf("rules[%d]", i)
		if err := r.Validate(); err != nil {
			errs = append(errs, prefixed(field, err)...)
			continue
		}
		if r.TypeID != p.TypeID {
			errs.Add(field+".type_id", fmt.Sprintf("rule belongs to type %d, not %d", r.TypeID, p.TypeID))
			continue
		}
		bucket := e.rules[r.CombinationID]
		if slices.ContainsFunc(bucket, func(c compiledRule) bool { return c.rule.ID == r.ID }) {
			errs.Add(field+".id", fmt.Sprintf("duplicate id %d for combination %s", r.ID, r.CombinationID))
			continue
		}

		c, err := compileRule(r, opts)
		if err != nil {
			errs = append(errs, prefixed(field, err)...)
			continue
		}
		e.rules[r.CombinationID] = append(bucket, c)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

func compileRule(r domain.DeclensionRule, opts pattern.Options) (compiledRule, error) {
	var errs domain.FieldErrors
	c := compiledRule{rule: r}

	match, err := pattern.Compile(r.Pattern, opts)
	if err != nil {
		errs.Add("pattern", err.Error())
	}
	c.match = match

	for i, t := range r.Transforms {
		rep, err := pattern.NewReplacer(t.Pattern, t.Replacement, opts)
		if err != nil {
			errs.Add(fmt.Sprintf("transforms[%d]", i), err.Error())
			continue
		}
		c.transforms = append(c.transforms, rep)
	}
	return c, errs.Err()
}

func prefixed(prefix string, err error) domain.FieldErrors {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return domain.FieldErrors{{Field: prefix, Message: err.Error()}}
	}
	out := make(domain.FieldErrors, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		out = append(out, domain.FieldError{Field: prefix + "." + fe.Field, Message: fe.Message})
	}
	return out
}

// TypeID returns the part of speech this engine declines.
func (e *Engine) TypeID() int64 { return e.typeID }

// Combinations returns every paradigm cell, suppressed ones included.
func (e *Engine) Combinations() []domain.Combination {
	return slices.Clone(e.combinations)
}

// Suppressed reports whether a cell is hidden for this part of speech.
func (e *Engine) Suppressed(id domain.CombinationID) bool {
	return e.suppressed[id]
}

// Decline resolves one form. An override wins verbatim. Otherwise the first
// rule for the combination whose class filter passes and whose pattern
// matches the whole base word is applied. Words no rule matches come back
// unchanged.
func (e *Engine) Decline(word domain.Word, forms domain.WordForms, id domain.CombinationID) domain.Form {
	if n, ok := forms.Get(id); ok {
		return domain.Form{Value: n.Value, Source: domain.FormSourceOverride}
	}
	if v, ruleID, ok := e.generate(word, id); ok {
		return domain.Form{Value: v, Source: domain.FormSourceRule, RuleID: ruleID}
	}
	return domain.Form{Value: word.Value, Source: domain.FormSourceIdentity}
}

func (e *Engine) generate(word domain.Word, id domain.CombinationID) (string, int64, bool) {
	if !word.HasType(e.typeID) {
		return "", 0, false
	}
	for _, c := range e.rules[id] {
		if !e.classesPass(c.rule, word) {
			continue
		}
		ok, err := c.match.MatchWhole(word.Value)
		if err != nil || !ok {
			continue
		}
		out, err := applyTransforms(c.transforms, word.Value)
		if err != nil {
			continue
		}
		return out, c.rule.ID, true
	}
	return "", 0, false
}

func applyTransforms(transforms []*pattern.Replacer, base string) (string, error) {
	out := base
	for _, t := range transforms {
		var err error
		if out, err = t.ReplaceAll(out); err != nil {
			return base, err
		}
	}
	return out, nil
}

func (e *Engine) classesPass(r domain.DeclensionRule, word domain.Word) bool {
	if r.ApplyToAllClasses || len(r.ClassFilters) == 0 || !e.typeHasClasses {
		return true
	}
	for _, f := range r.ClassFilters {
		if !word.HasClassValue(f.ClassID, f.ValueID) {
			return false
		}
	}
	return true
}

// Paradigm returns the form of every combination that is not suppressed.
func (e *Engine) Paradigm(word domain.Word, forms domain.WordForms) []Cell {
	cells := make([]Cell, 0, len(e.combinations))
	for _, c := range e.combinations {
		if e.suppressed[c.ID] {
			continue
		}
		cells = append(cells, Cell{Combination: c, Form: e.Decline(word, forms, c.ID)})
	}
	return cells
}

// RequirementsMet lists the mandatory, unsuppressed combinations the word
// leaves empty. A combination is filled by a non-empty override or by a
// rule producing a non-empty form; the identity fallback does not count.
func (e *Engine) RequirementsMet(word domain.Word, forms domain.WordForms) []domain.Violation {
	var out []domain.Violation
	for _, c := range e.combinations {
		if !c.Mandatory || e.suppressed[c.ID] {
			continue
		}
		if n, ok := forms.Get(c.ID); ok && strings.TrimSpace(n.Value) != "" {
			continue
		}
		if v, _, ok := e.generate(word, c.ID); ok && v != "" {
			continue
		}
		out = append(out, domain.Violation{
			CombinationID: c.ID,
			Label:         c.Label,
			Message:       fmt.Sprintf("%s is mandatory and has no value", strings.TrimSpace(c.Label)),
		})
	}
	return out
}

// DeprecatedRules returns rules keyed to combinations the templates no
// longer produce.
func (e *Engine) DeprecatedRules() []domain.DeclensionRule {
	var out []domain.DeclensionRule
	for _, r := range e.ordered {
		if !e.known[r.CombinationID] {
			out = append(out, r)
		}
	}
	return out
}

// DeprecatedForms returns overrides keyed to combinations the templates no
// longer produce.
func (e *Engine) DeprecatedForms(forms domain.WordForms) domain.WordForms {
	var out domain.WordForms
	for _, n := range forms {
		if !e.known[n.CombinationID] {
			out = append(out, n)
		}
	}
	return out
}
