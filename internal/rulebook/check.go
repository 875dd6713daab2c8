package rulebook

import (
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

// Severity grades a finding. Errors make `check` exit non-zero.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem located in the rulebook.
type Finding struct {
	Severity Severity `json:"severity"`
	Scope    string   `json:"scope"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Scope, f.Message)
}

// Findings is the result of Check.
type Findings []Finding

// HasErrors reports whether any finding is an error.
func (fs Findings) HasErrors() bool {
	return slices.ContainsFunc(fs, func(f Finding) bool { return f.Severity == SeverityError })
}

// Count returns the number of findings of one severity.
func (fs Findings) Count(s Severity) int {
	n := 0
	for _, f := range fs {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Check compiles every guide and paradigm and runs each word through them.
// Configuration errors stop the affected engine; the rest is still checked.
func (rb *Rulebook) Check(cfg config.EngineConfig) Findings {
	var out Findings
	add := func(sev Severity, scope, msg string) {
		out = append(out, Finding{Severity: sev, Scope: scope, Message: msg})
	}

	guides := map[domain.GuideKind]*pronunciation.Engine{}
	for _, kind := range []domain.GuideKind{domain.GuideKindPronunciation, domain.GuideKindRomanization} {
		g, ok := rb.guide(kind)
		if !ok {
			continue
		}
		scope := guideScope(kind)
		for i, r := range g.Rules {
			if domain.IsLookaround(r.Pattern) {
				add(SeverityWarning, fmt.Sprintf("%s.rules[%d]", scope, i),
					fmt.Sprintf("pattern %q uses lookaround, which only sees the unconsumed rest of the word", r.Pattern))
			}
		}
		engine, err := rb.PronunciationEngine(kind, cfg)
		if err != nil {
			out = append(out, errorFindings(scope, err)...)
			continue
		}
		guides[kind] = engine
	}

	paradigms := map[int64]*declension.Engine{}
	for i, p := range rb.PartsOfSpeech {
		scope := fmt.Sprintf("parts_of_speech[%d]", i)
		engine, err := rb.DeclensionEngine(p.ID, cfg)
		if err != nil {
			out = append(out, errorFindings(scope, err)...)
			continue
		}
		paradigms[p.ID] = engine
		for _, r := range engine.DeprecatedRules() {
			add(SeverityWarning, scope, fmt.Sprintf("rule %d (%s) targets unknown combination %s", r.ID, r.Name, r.CombinationID))
		}
	}

	for i, w := range rb.Words {
		scope := fmt.Sprintf("words[%d] %q", i, w.Value)
		word := w.toDomain(rb.Language().ID)
		forms := rb.Forms(w.ID)

		for _, kind := range []domain.GuideKind{domain.GuideKindPronunciation, domain.GuideKindRomanization} {
			engine, ok := guides[kind]
			if !ok {
				continue
			}
			if res := engine.Match(w.Value); res.Outcome.Unparseable() {
				add(SeverityWarning, scope, fmt.Sprintf("%s: %s", guideScope(kind), res.Outcome))
			}
		}

		if w.Type == nil {
			if len(forms) > 0 {
				add(SeverityWarning, scope, "forms are ignored on a word without a part of speech")
			}
			continue
		}
		engine, ok := paradigms[*w.Type]
		if !ok {
			continue
		}
		for _, v := range engine.RequirementsMet(word, forms) {
			add(SeverityError, scope, v.Message)
		}
		for _, n := range engine.DeprecatedForms(forms) {
			add(SeverityWarning, scope, fmt.Sprintf("form %s is no longer part of the paradigm", n.CombinationID))
		}
	}
	return out
}

func guideScope(kind domain.GuideKind) string {
	if kind == domain.GuideKindRomanization {
		return "romanization"
	}
	return "pronunciation"
}

// errorFindings expands a validation error into one finding per field.
func errorFindings(scope string, err error) Findings {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return Findings{{Severity: SeverityError, Scope: scope, Message: err.Error()}}
	}
	out := make(Findings, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		out = append(out, Finding{Severity: SeverityError, Scope: scope + "." + fe.Field, Message: fe.Message})
	}
	return out
}
