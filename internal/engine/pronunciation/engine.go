// Package pronunciation turns orthographic words into phoneme sequences by
// matching an ordered list of (pattern, phoneme) rules.
//
// The engine is a pure function of the word and the rule list it was built
// from. It holds no mutable state between calls and is safe to share
// between goroutines.
package pronunciation

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pattern"
)

// DefaultMaxDepth is the recursion ceiling used when Config.MaxDepth is zero.
const DefaultMaxDepth = 100

// SyllableMark is appended to a phoneme that closes a syllable.
const SyllableMark = "˙"

// Mode selects how rules are matched.
type Mode string

const (
	// ModeRegex anchors each rule pattern at the current position.
	ModeRegex Mode = "REGEX"
	// ModeLiteral compares rule patterns as plain prefixes.
	ModeLiteral Mode = "LITERAL"
	// ModeRecursive applies every rule as a replace-all over the whole word
	// and yields a single element.
	ModeRecursive Mode = "RECURSIVE"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeRegex, ModeLiteral, ModeRecursive:
		return true
	}
	return false
}

// ModeFor derives the mode from the language and guide flags. The recursive
// guide flag wins over the language-wide regex switch.
func ModeFor(settings domain.LanguageSettings, guide domain.PhonologyGuide) Mode {
	switch {
	case guide.Recursive:
		return ModeRecursive
	case settings.DisableRegex:
		return ModeLiteral
	default:
		return ModeRegex
	}
}

// Config carries the language-wide switches for one engine.
type Config struct {
	Mode Mode
	// IgnoreCase affects literal mode only.
	IgnoreCase bool
	// MaxDepth bounds recursion depth measured from the word's rune count,
	// so a word of n runes may split into at most n+MaxDepth tokens and long
	// words are never cut off for their length alone. Zero selects
	// DefaultMaxDepth; a negative ceiling demands multi-rune tokens.
	MaxDepth int
	// Timeout bounds a single regex match.
	Timeout             time.Duration
	SyllableComposition bool
	Syllables           []string
}

// Result is the outcome of pronouncing one word.
type Result struct {
	Elements []domain.PhonemeMatch
	Outcome  domain.PronunciationOutcome
}

// Phoneme concatenates the phonemes of all elements.
func (r Result) Phoneme() string {
	var b strings.Builder
	for _, e := range r.Elements {
		b.WriteString(e.Phoneme)
	}
	return b.String()
}

type compiledRule struct {
	rule     domain.PronunciationRule
	anchored bool
	literal  []rune
	prefix   *pattern.Regex
	replacer *pattern.Replacer
}

// Engine pronounces words against a fixed rule list.
type Engine struct {
	cfg       Config
	rules     []compiledRule
	syllables [][]rune
}

// New validates and compiles rules. Rules are tried by ascending Position;
// rules sharing a position keep their slice order.
func New(rules []domain.PronunciationRule, cfg Config) (*Engine, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeRegex
	}
	if !cfg.Mode.IsValid() {
		return nil, domain.NewValidationError("mode", fmt.Sprintf("unknown mode %q", cfg.Mode))
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	ordered := make([]domain.PronunciationRule, len(rules))
	copy(ordered, rules)
	domain.SortByPosition(ordered, func(r domain.PronunciationRule) int { return r.Position })

	var errs domain.FieldErrors
	seen := make([]int64, 0, len(ordered))
	compiled := make([]compiledRule, 0, len(ordered))
	opts := pattern.Options{IgnoreCase: cfg.IgnoreCase, Timeout: cfg.Timeout}

	for i, r := range ordered {
		field := fmt.Sprintf("rules[%d]", i)
		switch {
		case r.ID < 1:
			errs.Add(field+".id", "must be >= 1")
		case slices.Contains(seen, r.ID):
			errs.Add(field+".id", fmt.Sprintf("duplicate id %d", r.ID))
		}
		seen = append(seen, r.ID)
		if r.Pattern == "" {
			errs.Add(field+".pattern", "required")
			continue
		}

		c := compiledRule{rule: r}
		var err error
		switch cfg.Mode {
		case ModeLiteral:
			c.literal = []rune(r.Pattern)
		case ModeRegex:
			c.anchored = r.AnchoredToStart()
			if c.prefix, err = pattern.Compile(r.Pattern, opts); err == nil {
				c.replacer, err = pattern.NewReplacer(r.Pattern, r.Phoneme, opts)
			}
		case ModeRecursive:
			c.replacer, err = pattern.NewReplacer(r.Pattern, r.Phoneme, opts)
		}
		if err != nil {
			errs.Add(field+".pattern", err.Error())
			continue
		}
		compiled = append(compiled, c)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, rules: compiled}
	if cfg.SyllableComposition {
		for _, s := range cfg.Syllables {
			if s != "" {
				e.syllables = append(e.syllables, []rune(s))
			}
		}
	}
	return e, nil
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Elements returns the phoneme sequence of word, empty on any miss.
func (e *Engine) Elements(word string) []domain.PhonemeMatch {
	return e.Match(word).Elements
}

// Match pronounces one word. A non-blank word that cannot be fully consumed
// yields no elements and an unparseable outcome; partial matches are never
// returned.
func (e *Engine) Match(word string) Result {
	if word == "" || len(e.rules) == 0 {
		return Result{Outcome: domain.OutcomeEmpty}
	}
	if e.cfg.Mode == ModeRecursive {
		return e.matchRecursive(word)
	}

	m := &matcher{engine: e, word: word, failed: make(map[int]bool)}
	elems, ok, _ := m.consume(0, 1-utf8.RuneCountInString(word))
	switch {
	case m.err != nil:
		return Result{Outcome: domain.OutcomeTimeout}
	case !ok:
		if m.depthHit {
			return Result{Outcome: domain.OutcomeDepthExceeded}
		}
		return Result{Outcome: domain.OutcomeNoMatch}
	}

	if len(e.syllables) > 0 {
		e.markSyllables(word, elems)
	}
	return Result{Elements: elems, Outcome: domain.OutcomeMatched}
}

// Pronounce renders a whitespace separated phrase.
//
// Words that cannot be pronounced are left out of the rendering rather than
// kept as empty slots, so the rendered string carries no gaps and its word
// positions need not line up with the phrase. The results always hold one
// entry per strings.Fields word in phrase order; callers that need the
// alignment read it from there.
func (e *Engine) Pronounce(phrase string) (string, []Result) {
	words := strings.Fields(phrase)
	results := make([]Result, 0, len(words))
	parts := make([]string, 0, len(words))
	for _, w := range words {
		res := e.Match(w)
		results = append(results, res)
		if p := res.Phoneme(); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " "), results
}

func (e *Engine) matchRecursive(word string) Result {
	out := word
	for _, c := range e.rules {
		var err error
		if out, err = c.replacer.ReplaceAll(out); err != nil {
			return Result{Outcome: domain.OutcomeTimeout}
		}
	}
	return Result{
		Elements: []domain.PhonemeMatch{{Matched: word, Phoneme: out}},
		Outcome:  domain.OutcomeMatched,
	}
}

// matcher holds the per-call state of one word. failed memoises positions
// that cannot be consumed; a failure that touched the depth ceiling is not
// memoised because a shallower path may still succeed there.
type matcher struct {
	engine   *Engine
	word     string
	failed   map[int]bool
	depthHit bool
	err      error
}

func (m *matcher) consume(pos, depth int) ([]domain.PhonemeMatch, bool, bool) {
	if pos == len(m.word) {
		return nil, true, false
	}
	if m.failed[pos] {
		return nil, false, false
	}
	if depth > m.engine.cfg.MaxDepth {
		m.depthHit = true
		return nil, false, true
	}

	rest := m.word[pos:]
	tainted := false
	for i := range m.engine.rules {
		c := &m.engine.rules[i]
		matched, ok := m.matchRule(c, rest, pos == 0)
		if m.err != nil {
			return nil, false, true
		}
		if !ok || matched == "" {
			continue
		}

		tail, tailOK, t := m.consume(pos+len(matched), depth+1)
		if m.err != nil {
			return nil, false, true
		}
		tainted = tainted || t
		if !tailOK {
			continue
		}

		phoneme, err := m.phoneme(c, matched)
		if err != nil {
			m.err = err
			return nil, false, true
		}
		out := make([]domain.PhonemeMatch, 0, len(tail)+1)
		out = append(out, domain.PhonemeMatch{Matched: matched, Phoneme: phoneme, RuleID: c.rule.ID})
		return append(out, tail...), true, tainted
	}

	if !tainted {
		m.failed[pos] = true
	}
	return nil, false, tainted
}

func (m *matcher) matchRule(c *compiledRule, rest string, atStart bool) (string, bool) {
	if c.literal != nil {
		return literalPrefix(rest, c.literal, m.engine.cfg.IgnoreCase)
	}
	if c.anchored && !atStart {
		return "", false
	}
	matched, ok, err := c.prefix.MatchPrefix(rest)
	if err != nil {
		m.err = err
		return "", false
	}
	return matched, ok
}

func (m *matcher) phoneme(c *compiledRule, matched string) (string, error) {
	if c.replacer == nil {
		return c.rule.Phoneme, nil
	}
	return c.replacer.ReplaceAll(matched)
}

// literalPrefix compares rune by rune and returns the consumed slice of s.
func literalPrefix(s string, prefix []rune, ignoreCase bool) (string, bool) {
	n := 0
	for _, want := range prefix {
		if n >= len(s) {
			return "", false
		}
		got, size := utf8.DecodeRuneInString(s[n:])
		if got != want && !(ignoreCase && unicode.ToLower(got) == unicode.ToLower(want)) {
			return "", false
		}
		n += size
	}
	return s[:n], true
}

// markSyllables appends SyllableMark to every element that ends on a
// syllable boundary. Boundaries come from the first segmentation of the
// word into known syllables, trying shorter syllables first. The end of the
// word is never marked.
func (e *Engine) markSyllables(word string, elems []domain.PhonemeMatch) {
	breaks, ok := e.syllableBreaks(word)
	if !ok || len(breaks) == 0 {
		return
	}
	end := 0
	for i := range elems {
		end += len(elems[i].Matched)
		if breaks[end] {
			elems[i].Phoneme += SyllableMark
		}
	}
}

func (e *Engine) syllableBreaks(word string) (map[int]bool, bool) {
	breaks := make(map[int]bool)
	dead := make(map[int]bool)

	var segment func(pos int) bool
	segment = func(pos int) bool {
		if dead[pos] {
			return false
		}
		for _, end := range e.syllableEnds(word, pos) {
			if end == len(word) {
				return true
			}
			if segment(end) {
				breaks[end] = true
				return true
			}
		}
		dead[pos] = true
		return false
	}

	if !segment(0) {
		return nil, false
	}
	return breaks, true
}

// syllableEnds lists byte offsets where a known syllable starting at pos
// ends, shortest first.
func (e *Engine) syllableEnds(word string, pos int) []int {
	var ends []int
	for end := pos; end < len(word); {
		_, size := utf8.DecodeRuneInString(word[end:])
		end += size
		if e.isSyllable(word[pos:end]) {
			ends = append(ends, end)
		}
	}
	return ends
}

func (e *Engine) isSyllable(s string) bool {
	for _, syl := range e.syllables {
		if got, ok := literalPrefix(s, syl, e.cfg.IgnoreCase); ok && len(got) == len(s) {
			return true
		}
	}
	return false
}
