package declension

import (
	"errors"
	"strings"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pattern"
)

var errBlankPattern = errors.New("pattern blanked")

// Evolution records one transform touched by Evolve.
type Evolution struct {
	RuleID   int64            `json:"rule_id"`
	RuleName string           `json:"rule_name"`
	Index    int              `json:"index"`
	Before   domain.Transform `json:"before"`
	After    domain.Transform `json:"after"`
	// Error is set when the change was reverted.
	Error string `json:"error,omitempty"`
}

// Reverted reports whether the transform kept its original value.
func (e Evolution) Reverted() bool { return e.Error != "" }

// Evolve substitutes find with replace, literally, in the pattern and the
// replacement of every transform. A transform whose pattern would become
// blank or invalid keeps its original value and is reported with an error.
// Rules are copied; the input is not modified. Only changed rules are
// returned.
func Evolve(rules []domain.DeclensionRule, find, replace string) ([]domain.DeclensionRule, []Evolution) {
	if find == "" {
		return nil, nil
	}

	var changed []domain.DeclensionRule
	var report []Evolution
	for _, r := range rules {
		r.Transforms = append([]domain.Transform(nil), r.Transforms...)
		touched := false
		for i, before := range r.Transforms {
			after := domain.Transform{
				Pattern:     strings.ReplaceAll(before.Pattern, find, replace),
				Replacement: strings.ReplaceAll(before.Replacement, find, replace),
			}
			if after == before {
				continue
			}

			ev := Evolution{RuleID: r.ID, RuleName: r.Name, Index: i, Before: before, After: after}
			if err := checkEvolved(after); err != nil {
				ev.Error = err.Error() + " (value reverted to original)"
				report = append(report, ev)
				continue
			}
			r.Transforms[i] = after
			touched = true
			report = append(report, ev)
		}
		if touched {
			changed = append(changed, r)
		}
	}
	return changed, report
}

func checkEvolved(t domain.Transform) error {
	if strings.TrimSpace(t.Pattern) == "" {
		return errBlankPattern
	}
	if err := pattern.Validate(t.Pattern); err != nil {
		return err
	}
	_, err := pattern.TranslateReplacement(t.Replacement)
	return err
}
