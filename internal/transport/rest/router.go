package rest

import (
	"net/http"

	"github.com/heartmarshall/conlang-backend/internal/transport/middleware"
)

// Handlers groups everything NewRouter mounts. Metrics and Expensive are
// optional: a nil Metrics handler leaves the metrics path unrouted and a nil
// Expensive middleware leaves report and pronounce unthrottled.
type Handlers struct {
	Health    *HealthHandler
	Language  *LanguageHandler
	Phonology *PhonologyHandler
	Lexicon   *LexiconHandler
	Grammar   *GrammarHandler
	Forms     *FormHandler
	Report    *ReportHandler

	Metrics     http.Handler
	MetricsPath string
	Expensive   middleware.Middleware
}

// NewRouter registers every route. Reads are public; mutations require an
// editor, which means the Auth middleware must run before the mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	edit := func(f http.HandlerFunc) http.Handler { return middleware.RequireEditor(f) }
	costly := func(next http.Handler) http.Handler {
		if h.Expensive == nil {
			return next
		}
		return h.Expensive(next)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	// Languages
	mux.HandleFunc("GET /languages", h.Language.List)
	mux.Handle("POST /languages", edit(h.Language.Create))
	mux.HandleFunc("GET /languages/{lang}", h.Language.Get)
	mux.Handle("PATCH /languages/{lang}", edit(h.Language.Update))
	mux.Handle("DELETE /languages/{lang}", edit(h.Language.Delete))
	mux.Handle("GET /languages/{lang}/report", costly(http.HandlerFunc(h.Report.Generate)))

	// Phonology guides
	const guide = "/languages/{lang}/guides/{kind}"
	mux.HandleFunc("GET "+guide, h.Language.GetGuide)
	mux.Handle("PUT "+guide, edit(h.Language.UpdateGuide))
	mux.HandleFunc("GET "+guide+"/rules", h.Phonology.ListRules)
	mux.Handle("POST "+guide+"/rules", edit(h.Phonology.AddRule))
	mux.HandleFunc("GET "+guide+"/rules/lookarounds", h.Phonology.Lookarounds)
	mux.Handle("PUT "+guide+"/rules/{id}", edit(h.Phonology.UpdateRule))
	mux.Handle("DELETE "+guide+"/rules/{id}", edit(h.Phonology.DeleteRule))
	mux.Handle("POST "+guide+"/rules/{id}/move", edit(h.Phonology.MoveRule))
	mux.Handle("POST "+guide+"/pronounce", costly(http.HandlerFunc(h.Phonology.Pronounce)))

	// Parts of speech
	const pos = "/languages/{lang}/parts-of-speech"
	mux.HandleFunc("GET "+pos, h.Lexicon.ListPartsOfSpeech)
	mux.Handle("POST "+pos, edit(h.Lexicon.CreatePartOfSpeech))
	mux.HandleFunc("GET "+pos+"/{type}", h.Lexicon.GetPartOfSpeech)
	mux.Handle("PATCH "+pos+"/{type}", edit(h.Lexicon.UpdatePartOfSpeech))
	mux.Handle("DELETE "+pos+"/{type}", edit(h.Lexicon.DeletePartOfSpeech))

	// Templates and combinations
	const tpl = pos + "/{type}/templates"
	mux.HandleFunc("GET "+tpl, h.Grammar.ListTemplates)
	mux.Handle("POST "+tpl, edit(h.Grammar.CreateTemplate))
	mux.Handle("PATCH "+tpl+"/{id}", edit(h.Grammar.UpdateTemplate))
	mux.Handle("DELETE "+tpl+"/{id}", edit(h.Grammar.DeleteTemplate))
	mux.Handle("POST "+tpl+"/{id}/move", edit(h.Grammar.MoveTemplate))
	mux.Handle("POST "+tpl+"/{id}/dimensions", edit(h.Grammar.AddDimension))
	mux.Handle("DELETE "+tpl+"/{id}/dimensions/{dim}", edit(h.Grammar.DeleteDimension))
	mux.HandleFunc("GET "+pos+"/{type}/combinations", h.Grammar.Combinations)
	mux.Handle("PUT "+pos+"/{type}/combinations/{comb}/suppressed", edit(h.Grammar.SetSuppressed))

	// Declension rules
	const rules = pos + "/{type}/rules"
	mux.HandleFunc("GET "+rules, h.Grammar.ListRules)
	mux.Handle("POST "+rules, edit(h.Grammar.AddRule))
	mux.HandleFunc("GET "+rules+"/deprecated", h.Grammar.DeprecatedRules)
	mux.Handle("POST "+rules+"/evolve", edit(h.Grammar.EvolveRules))
	mux.Handle("PUT "+rules+"/{id}", edit(h.Grammar.UpdateRule))
	mux.Handle("DELETE "+rules+"/{id}", edit(h.Grammar.DeleteRule))
	mux.Handle("POST "+rules+"/{id}/move", edit(h.Grammar.MoveRule))
	mux.Handle("POST "+rules+"/{id}/transforms", edit(h.Grammar.AddTransform))
	mux.Handle("PUT "+rules+"/{id}/transforms/{index}", edit(h.Grammar.UpdateTransform))
	mux.Handle("DELETE "+rules+"/{id}/transforms/{index}", edit(h.Grammar.DeleteTransform))
	mux.Handle("POST "+rules+"/{id}/transforms/{index}/move", edit(h.Grammar.MoveTransform))
	mux.Handle("PUT "+rules+"/{id}/apply-to-all-classes", edit(h.Grammar.SetApplyToAllClasses))
	mux.Handle("PUT "+rules+"/{id}/class-filters/{class}", edit(h.Grammar.SetClassFilter))
	mux.Handle("DELETE "+rules+"/{id}/class-filters/{class}", edit(h.Grammar.RemoveClassFilter))

	// Word classes
	const classes = "/languages/{lang}/classes"
	mux.HandleFunc("GET "+classes, h.Lexicon.ListClasses)
	mux.Handle("POST "+classes, edit(h.Lexicon.CreateClass))
	mux.Handle("DELETE "+classes+"/{class}", edit(h.Lexicon.DeleteClass))
	mux.Handle("POST "+classes+"/{class}/values", edit(h.Lexicon.AddClassValue))
	mux.Handle("DELETE "+classes+"/{class}/values/{value}", edit(h.Lexicon.DeleteClassValue))

	// Words and their forms
	const words = "/languages/{lang}/words"
	mux.HandleFunc("GET "+words, h.Lexicon.ListWords)
	mux.Handle("POST "+words, edit(h.Lexicon.CreateWord))
	mux.HandleFunc("GET "+words+"/{id}", h.Lexicon.GetWord)
	mux.Handle("PATCH "+words+"/{id}", edit(h.Lexicon.UpdateWord))
	mux.Handle("DELETE "+words+"/{id}", edit(h.Lexicon.DeleteWord))
	mux.Handle("PUT "+words+"/{id}/classes/{class}", edit(h.Lexicon.SetWordClass))
	mux.Handle("DELETE "+words+"/{id}/classes/{class}", edit(h.Lexicon.RemoveWordClass))
	mux.HandleFunc("GET "+words+"/{id}/forms", h.Forms.Paradigm)
	mux.HandleFunc("GET "+words+"/{id}/forms/{comb}", h.Forms.Decline)
	mux.Handle("PUT "+words+"/{id}/forms/{comb}", edit(h.Forms.SetOverride))
	mux.Handle("DELETE "+words+"/{id}/forms/{comb}", edit(h.Forms.ClearOverride))
	mux.HandleFunc("GET "+words+"/{id}/requirements", h.Forms.Requirements)
	mux.HandleFunc("GET "+words+"/{id}/deprecated-forms", h.Forms.DeprecatedForms)

	return mux
}
