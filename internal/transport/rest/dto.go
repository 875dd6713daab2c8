package rest

import (
	"time"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/service/grammar"
	"github.com/heartmarshall/conlang-backend/internal/service/lexicon"
	"github.com/heartmarshall/conlang-backend/internal/service/phonology"
	"github.com/heartmarshall/conlang-backend/internal/service/report"
)

// ---------------------------------------------------------------------------
// Languages and guides
// ---------------------------------------------------------------------------

type languageResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IgnoreCase   bool      `json:"ignoreCase"`
	DisableRegex bool      `json:"disableRegex"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toLanguageResponse(l *domain.Language) languageResponse {
	return languageResponse{
		ID:           l.ID.String(),
		Name:         l.Name,
		IgnoreCase:   l.Settings.IgnoreCase,
		DisableRegex: l.Settings.DisableRegex,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

type guideResponse struct {
	Kind                string   `json:"kind"`
	Recursive           bool     `json:"recursive"`
	SyllableComposition bool     `json:"syllableComposition"`
	Enabled             bool     `json:"enabled"`
	Syllables           []string `json:"syllables"`
}

func toGuideResponse(g domain.PhonologyGuide) guideResponse {
	syl := g.Syllables
	if syl == nil {
		syl = []string{}
	}
	return guideResponse{
		Kind:                g.Kind.String(),
		Recursive:           g.Recursive,
		SyllableComposition: g.SyllableComposition,
		Enabled:             g.Enabled,
		Syllables:           syl,
	}
}

// ---------------------------------------------------------------------------
// Pronunciation
// ---------------------------------------------------------------------------

type pronunciationRuleResponse struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Pattern  string `json:"pattern"`
	Phoneme  string `json:"phoneme"`
}

func toPronunciationRules(rules []domain.PronunciationRule) []pronunciationRuleResponse {
	out := make([]pronunciationRuleResponse, len(rules))
	for i, r := range rules {
		out[i] = pronunciationRuleResponse{ID: r.ID, Position: r.Position, Pattern: r.Pattern, Phoneme: r.Phoneme}
	}
	return out
}

type phonemeMatchResponse struct {
	Matched string `json:"matched"`
	Phoneme string `json:"phoneme"`
	RuleID  int64  `json:"ruleId,omitempty"`
}

type wordPronunciationResponse struct {
	Word     string                 `json:"word"`
	Phoneme  string                 `json:"phoneme"`
	Outcome  string                 `json:"outcome"`
	Elements []phonemeMatchResponse `json:"elements"`
}

type pronounceResponse struct {
	Text        string                      `json:"text"`
	Phoneme     string                      `json:"phoneme"`
	Unparseable int                         `json:"unparseable"`
	Words       []wordPronunciationResponse `json:"words"`
}

func toPronounceResponse(res phonology.PronounceResult) pronounceResponse {
	out := pronounceResponse{
		Text:        res.Text,
		Phoneme:     res.Phoneme,
		Unparseable: res.Unparseable(),
		Words:       make([]wordPronunciationResponse, len(res.Words)),
	}
	for i, w := range res.Words {
		elems := make([]phonemeMatchResponse, len(w.Elements))
		for j, e := range w.Elements {
			elems[j] = phonemeMatchResponse{Matched: e.Matched, Phoneme: e.Phoneme, RuleID: e.RuleID}
		}
		out.Words[i] = wordPronunciationResponse{
			Word:     w.Word,
			Phoneme:  w.Phoneme,
			Outcome:  string(w.Outcome),
			Elements: elems,
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Lexicon
// ---------------------------------------------------------------------------

type partOfSpeechResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

func toPartOfSpeech(p domain.PartOfSpeech) partOfSpeechResponse {
	return partOfSpeechResponse{ID: p.ID, Name: p.Name, Notes: p.Notes}
}

type deleteTypeResponse struct {
	WordsDetached int64 `json:"wordsDetached"`
	FormsDeleted  int64 `json:"formsDeleted"`
}

func toDeleteTypeResponse(res lexicon.DeleteTypeResult) deleteTypeResponse {
	return deleteTypeResponse{WordsDetached: res.WordsDetached, FormsDeleted: res.FormsDeleted}
}

type classValueResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type classResponse struct {
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	FreeText bool                 `json:"freeText"`
	TypeIDs  []int64              `json:"typeIds"`
	Values   []classValueResponse `json:"values"`
}

func toClass(c domain.WordClass) classResponse {
	out := classResponse{
		ID:       c.ID,
		Name:     c.Name,
		FreeText: c.FreeText,
		TypeIDs:  c.TypeIDs,
		Values:   make([]classValueResponse, len(c.Values)),
	}
	if out.TypeIDs == nil {
		out.TypeIDs = []int64{}
	}
	for i, v := range c.Values {
		out.Values[i] = classValueResponse{ID: v.ID, Value: v.Value}
	}
	return out
}

type wordResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
	// TypeID is null for a word without a part of speech.
	TypeID *int64 `json:"typeId"`
	// Classes maps class id to value id. JSON object keys are strings.
	Classes map[int64]int64 `json:"classes"`
}

func toWord(w domain.Word) wordResponse {
	classes := w.Classes
	if classes == nil {
		classes = map[int64]int64{}
	}
	return wordResponse{ID: w.ID, Value: w.Value, TypeID: w.TypeID, Classes: classes}
}

// ---------------------------------------------------------------------------
// Declension
// ---------------------------------------------------------------------------

type dimensionResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Mandatory bool   `json:"mandatory"`
	Position  int    `json:"position"`
}

type templateResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Notes         string              `json:"notes"`
	Mandatory     bool                `json:"mandatory"`
	Position      int                 `json:"position"`
	Singleton     bool                `json:"singleton"`
	CombinationID string              `json:"combinationId,omitempty"`
	Dimensions    []dimensionResponse `json:"dimensions"`
}

func toTemplate(t domain.DeclensionTemplate) templateResponse {
	out := templateResponse{
		ID:            t.ID,
		Name:          t.Name,
		Notes:         t.Notes,
		Mandatory:     t.Mandatory,
		Position:      t.Position,
		Singleton:     t.Singleton,
		CombinationID: string(t.CombinationID),
		Dimensions:    make([]dimensionResponse, len(t.Dimensions)),
	}
	for i, d := range t.Dimensions {
		out.Dimensions[i] = toDimension(d)
	}
	return out
}

func toDimension(d domain.DeclensionDimension) dimensionResponse {
	return dimensionResponse{ID: d.ID, Name: d.Name, Mandatory: d.Mandatory, Position: d.Position}
}

func toTemplates(ts []domain.DeclensionTemplate) []templateResponse {
	out := make([]templateResponse, len(ts))
	for i, t := range ts {
		out[i] = toTemplate(t)
	}
	return out
}

type transformJSON struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

type classFilterJSON struct {
	ClassID int64 `json:"classId"`
	ValueID int64 `json:"valueId"`
}

type declensionRuleResponse struct {
	ID                int64             `json:"id"`
	CombinationID     string            `json:"combinationId"`
	Name              string            `json:"name"`
	Pattern           string            `json:"pattern"`
	Position          int               `json:"position"`
	ApplyToAllClasses bool              `json:"applyToAllClasses"`
	ClassFilters      []classFilterJSON `json:"classFilters"`
	Transforms        []transformJSON   `json:"transforms"`
}

func toDeclensionRule(r domain.DeclensionRule) declensionRuleResponse {
	out := declensionRuleResponse{
		ID:                r.ID,
		CombinationID:     string(r.CombinationID),
		Name:              r.Name,
		Pattern:           r.Pattern,
		Position:          r.Position,
		ApplyToAllClasses: r.ApplyToAllClasses,
		ClassFilters:      make([]classFilterJSON, len(r.ClassFilters)),
		Transforms:        make([]transformJSON, len(r.Transforms)),
	}
	for i, f := range r.ClassFilters {
		out.ClassFilters[i] = classFilterJSON{ClassID: f.ClassID, ValueID: f.ValueID}
	}
	for i, t := range r.Transforms {
		out.Transforms[i] = transformJSON{Pattern: t.Pattern, Replacement: t.Replacement}
	}
	return out
}

func toDeclensionRules(rules []domain.DeclensionRule) []declensionRuleResponse {
	out := make([]declensionRuleResponse, len(rules))
	for i, r := range rules {
		out[i] = toDeclensionRule(r)
	}
	return out
}

func fromTransforms(in []transformJSON) []domain.Transform {
	out := make([]domain.Transform, len(in))
	for i, t := range in {
		out[i] = domain.Transform{Pattern: t.Pattern, Replacement: t.Replacement}
	}
	return out
}

func fromClassFilters(in []classFilterJSON) []domain.ClassFilter {
	out := make([]domain.ClassFilter, len(in))
	for i, f := range in {
		out[i] = domain.ClassFilter{ClassID: f.ClassID, ValueID: f.ValueID}
	}
	return out
}

type overrideResponse struct {
	CombinationID string `json:"combinationId"`
	Value         string `json:"value"`
	Notes         string `json:"notes"`
}

func toOverrides(forms domain.WordForms) []overrideResponse {
	out := make([]overrideResponse, len(forms))
	for i, n := range forms {
		out[i] = overrideResponse{CombinationID: string(n.CombinationID), Value: n.Value, Notes: n.Notes}
	}
	return out
}

type cellResponse struct {
	CombinationID string `json:"combinationId"`
	Label         string `json:"label"`
	Mandatory     bool   `json:"mandatory"`
	Value         string `json:"value"`
	Source        string `json:"source"`
	RuleID        int64  `json:"ruleId,omitempty"`
}

func toCell(c declension.Cell) cellResponse {
	return cellResponse{
		CombinationID: string(c.Combination.ID),
		Label:         c.Combination.Label,
		Mandatory:     c.Combination.Mandatory,
		Value:         c.Form.Value,
		Source:        c.Form.Source.String(),
		RuleID:        c.Form.RuleID,
	}
}

func toCells(cells []declension.Cell) []cellResponse {
	out := make([]cellResponse, len(cells))
	for i, c := range cells {
		out[i] = toCell(c)
	}
	return out
}

type violationResponse struct {
	CombinationID string `json:"combinationId"`
	Label         string `json:"label"`
	Message       string `json:"message"`
}

func toViolations(vs []domain.Violation) []violationResponse {
	out := make([]violationResponse, len(vs))
	for i, v := range vs {
		out[i] = violationResponse{CombinationID: string(v.CombinationID), Label: v.Label, Message: v.Message}
	}
	return out
}

type evolutionResponse struct {
	RuleID   int64         `json:"ruleId"`
	RuleName string        `json:"ruleName"`
	Index    int           `json:"index"`
	Before   transformJSON `json:"before"`
	After    transformJSON `json:"after"`
	Error    string        `json:"error,omitempty"`
}

type evolveResponse struct {
	RulesChanged int                 `json:"rulesChanged"`
	Evolutions   []evolutionResponse `json:"evolutions"`
}

func toEvolveResponse(res grammar.EvolveResult) evolveResponse {
	out := evolveResponse{
		RulesChanged: res.RulesChanged,
		Evolutions:   make([]evolutionResponse, len(res.Evolutions)),
	}
	for i, e := range res.Evolutions {
		out.Evolutions[i] = evolutionResponse{
			RuleID:   e.RuleID,
			RuleName: e.RuleName,
			Index:    e.Index,
			Before:   transformJSON{Pattern: e.Before.Pattern, Replacement: e.Before.Replacement},
			After:    transformJSON{Pattern: e.After.Pattern, Replacement: e.After.Replacement},
			Error:    e.Error,
		}
	}
	return out
}

type combinationResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Mandatory  bool   `json:"mandatory"`
	Suppressed bool   `json:"suppressed"`
}

func toCombinations(views []grammar.CombinationView) []combinationResponse {
	out := make([]combinationResponse, len(views))
	for i, v := range views {
		out[i] = combinationResponse{ID: string(v.ID), Label: v.Label, Mandatory: v.Mandatory, Suppressed: v.Suppressed}
	}
	return out
}

// ---------------------------------------------------------------------------
// Report
// ---------------------------------------------------------------------------

type wordReportResponse struct {
	WordID              int64               `json:"wordId"`
	Value               string              `json:"value"`
	TypeID              *int64              `json:"typeId"`
	Pronunciation       string              `json:"pronunciation"`
	PronunciationStatus string              `json:"pronunciationStatus"`
	Romanization        string              `json:"romanization"`
	RomanizationStatus  string              `json:"romanizationStatus,omitempty"`
	Forms               []cellResponse      `json:"forms"`
	Violations          []violationResponse `json:"violations"`
}

type reportStatsResponse struct {
	Words                    int `json:"words"`
	UnparseablePronunciation int `json:"unparseablePronunciation"`
	UnparseableRomanization  int `json:"unparseableRomanization"`
	Violations               int `json:"violations"`
}

type reportResponse struct {
	LanguageID   string               `json:"languageId"`
	LanguageName string               `json:"languageName"`
	GeneratedAt  time.Time            `json:"generatedAt"`
	Stats        reportStatsResponse  `json:"stats"`
	Words        []wordReportResponse `json:"words"`
}

func toReportResponse(rep report.Report) reportResponse {
	out := reportResponse{
		LanguageID:   rep.LanguageID.String(),
		LanguageName: rep.LanguageName,
		GeneratedAt:  rep.GeneratedAt,
		Stats: reportStatsResponse{
			Words:                    rep.Stats.Words,
			UnparseablePronunciation: rep.Stats.UnparseablePronunciation,
			UnparseableRomanization:  rep.Stats.UnparseableRomanization,
			Violations:               rep.Stats.Violations,
		},
		Words: make([]wordReportResponse, len(rep.Words)),
	}
	for i, w := range rep.Words {
		out.Words[i] = wordReportResponse{
			WordID:              w.WordID,
			Value:               w.Value,
			TypeID:              w.TypeID,
			Pronunciation:       w.Pronunciation,
			PronunciationStatus: string(w.PronunciationStatus),
			Romanization:        w.Romanization,
			RomanizationStatus:  string(w.RomanizationStatus),
			Forms:               toCells(w.Forms),
			Violations:          toViolations(w.Violations),
		}
	}
	return out
}
