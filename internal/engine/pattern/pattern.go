// Package pattern compiles user-authored rule patterns.
//
// Patterns use the backtracking dialect rule authors expect from desktop
// conlang tools: lookahead and lookbehind are allowed, a rule pattern tested
// against a word must match the whole word, and replacement strings
// reference groups as $1 or ${name} with backslash escapes. Every match runs
// under a time budget so a pathological pattern becomes a soft miss.
package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrTimeout is returned when a match exceeds its time budget.
var ErrTimeout = errors.New("pattern: match timeout")

// ErrEmpty is returned for a blank pattern.
var ErrEmpty = errors.New("pattern: empty pattern")

// Options tune compilation.
type Options struct {
	// IgnoreCase applies to literal patterns only. Regex authors use (?i).
	IgnoreCase bool
	// Timeout bounds a single match. Zero means no limit.
	Timeout time.Duration
}

// Regex is a compiled rule pattern.
type Regex struct {
	source string
	prefix *regexp2.Regexp
	whole  *regexp2.Regexp
}

// Validate reports whether expr compiles as a rule pattern.
func Validate(expr string) error {
	_, err := compile(expr, regexp2.None, 0)
	return err
}

// Compile builds a Regex usable for prefix and whole-string matching.
func Compile(expr string, opts Options) (*Regex, error) {
	if _, err := compile(expr, regexp2.None, 0); err != nil {
		return nil, err
	}
	prefix, err := compile(`\A(?:`+expr+`)`, regexp2.None, opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}
	whole, err := compile(`\A(?:`+expr+`)\z`, regexp2.None, opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}
	return &Regex{source: expr, prefix: prefix, whole: whole}, nil
}

func (r *Regex) String() string { return r.source }

// MatchPrefix matches the pattern at the start of s and returns the
// consumed prefix, which may be empty.
func (r *Regex) MatchPrefix(s string) (string, bool, error) {
	m, err := r.prefix.FindStringMatch(s)
	if err != nil {
		return "", false, timeoutError(r.source, err)
	}
	if m == nil {
		return "", false, nil
	}
	return m.String(), true, nil
}

// MatchWhole reports whether the pattern matches all of s.
func (r *Regex) MatchWhole(s string) (bool, error) {
	ok, err := r.whole.MatchString(s)
	if err != nil {
		return false, timeoutError(r.source, err)
	}
	return ok, nil
}

// Replacer substitutes every match of a pattern.
type Replacer struct {
	source      string
	re          *regexp2.Regexp
	replacement string
}

// NewReplacer compiles a regex replacement. repl uses $n, ${name} and
// backslash escapes.
func NewReplacer(expr, repl string, opts Options) (*Replacer, error) {
	re, err := compile(expr, regexp2.None, opts.Timeout)
	if err != nil {
		return nil, err
	}
	translated, err := TranslateReplacement(repl)
	if err != nil {
		return nil, err
	}
	return &Replacer{source: expr, re: re, replacement: translated}, nil
}

// NewLiteralReplacer replaces every occurrence of find with repl verbatim.
func NewLiteralReplacer(find, repl string, opts Options) (*Replacer, error) {
	if find == "" {
		return nil, ErrEmpty
	}
	flags := regexp2.None
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	re, err := compile(regexp2.Escape(find), flags, opts.Timeout)
	if err != nil {
		return nil, err
	}
	return &Replacer{source: find, re: re, replacement: strings.ReplaceAll(repl, "$", "$$")}, nil
}

func (r *Replacer) String() string { return r.source }

// ReplaceAll returns s with every match replaced.
func (r *Replacer) ReplaceAll(s string) (string, error) {
	out, err := r.re.Replace(s, r.replacement, -1, -1)
	if err != nil {
		return s, timeoutError(r.source, err)
	}
	return out, nil
}

// TranslateReplacement rewrites backslash escapes into the engine's
// replacement syntax: \$ becomes a literal dollar and \x becomes x.
func TranslateReplacement(repl string) (string, error) {
	if !strings.ContainsRune(repl, '\\') {
		return repl, nil
	}
	var b strings.Builder
	b.Grow(len(repl) + 2)
	rs := []rune(repl)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 == len(rs) {
			return "", fmt.Errorf("replacement %q: trailing backslash", repl)
		}
		i++
		if rs[i] == '$' {
			b.WriteString("$$")
		} else {
			b.WriteRune(rs[i])
		}
	}
	return b.String(), nil
}

func compile(expr string, flags regexp2.RegexOptions, timeout time.Duration) (*regexp2.Regexp, error) {
	if expr == "" {
		return nil, ErrEmpty
	}
	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}

// regexp2 reports exceeded budgets as plain errors; nothing else can fail
// after a successful compile.
func timeoutError(source string, err error) error {
	return fmt.Errorf("%q: %w: %v", source, ErrTimeout, err)
}
